package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Usuarios is the admin-side user list container.
type Usuarios struct {
	status
	api      UsuariosAPI
	usuarios []models.Usuario
}

func NewUsuarios(api UsuariosAPI) *Usuarios {
	return &Usuarios{api: api}
}

// Data returns the last successfully fetched list; stale data survives a
// failed refetch.
func (u *Usuarios) Data() []models.Usuario {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.usuarios
}

func (u *Usuarios) Fetch(ctx context.Context) error {
	u.begin()
	defer u.finish()

	data, err := u.api.Listar(ctx)
	if err != nil {
		u.fail("Error al obtener usuarios")
		return err
	}
	u.mu.Lock()
	u.usuarios = data
	u.mu.Unlock()
	return nil
}

// Registrar creates a user and appends it to the list only after the server
// confirmed it.
func (u *Usuarios) Registrar(ctx context.Context, req models.RegisterRequest) (*models.Usuario, error) {
	u.begin()
	defer u.finish()

	nuevo, err := u.api.Registrar(ctx, req)
	if err != nil {
		u.fail("Error al registrar usuario")
		return nil, err
	}
	u.mu.Lock()
	u.usuarios = append(u.usuarios, *nuevo)
	u.mu.Unlock()
	return nuevo, nil
}

// Actualizar patches the in-memory entry with the server's response.
func (u *Usuarios) Actualizar(ctx context.Context, id string, req models.UpdateUsuarioRequest) (*models.Usuario, error) {
	u.begin()
	defer u.finish()

	updated, err := u.api.Actualizar(ctx, id, req)
	if err != nil {
		u.fail("Error al actualizar usuario")
		return nil, err
	}
	u.mu.Lock()
	for i := range u.usuarios {
		if u.usuarios[i].ID == id {
			u.usuarios[i] = *updated
		}
	}
	u.mu.Unlock()
	return updated, nil
}

func (u *Usuarios) Obtener(ctx context.Context, id string) (*models.Usuario, error) {
	u.begin()
	defer u.finish()

	user, err := u.api.ObtenerPorID(ctx, id)
	if err != nil {
		u.fail("Error al obtener usuario")
		return nil, err
	}
	return user, nil
}
