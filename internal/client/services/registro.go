package services

import (
	"context"
	"errors"

	"github.com/colegioprofesionales/colegio-cli/internal/client/api"
	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// RegistroSocioData is everything the public registration wizard collects:
// the account fields plus the member-specific ones.
type RegistroSocioData struct {
	Nombres         string
	Apellidos       string
	Email           string
	Password        string
	Profesion       string
	Direccion       string
	Telefono        string
	MembresiaPlanID string
}

// RegistroSocio runs the two-step member registration: create the user
// account with rol Socio, then create the member record bound to the chosen
// plan. A failure in the first step aborts the flow; no member record is
// created for an account that does not exist.
type RegistroSocio struct {
	status
	usuarios UsuariosAPI
	socios   SociosAPI
	planes   PlanesAPI
	lista    []models.Plan
}

func NewRegistroSocio(usuarios UsuariosAPI, socios SociosAPI, planes PlanesAPI) *RegistroSocio {
	return &RegistroSocio{usuarios: usuarios, socios: socios, planes: planes}
}

func (r *RegistroSocio) Planes() []models.Plan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lista
}

func (r *RegistroSocio) FetchPlanes(ctx context.Context) error {
	r.begin()
	defer r.finish()

	data, err := r.planes.Listar(ctx)
	if err != nil {
		r.fail("Error al obtener planes")
		return err
	}
	r.mu.Lock()
	r.lista = data
	r.mu.Unlock()
	return nil
}

// Registrar performs both steps. The surfaced error prefers the backend's
// own message when it sent one (duplicate email and the like read better
// than a generic failure).
func (r *RegistroSocio) Registrar(ctx context.Context, data RegistroSocioData) (*models.Socio, error) {
	r.begin()
	defer r.finish()

	usuario, err := r.usuarios.Registrar(ctx, models.RegisterRequest{
		Nombres:   data.Nombres,
		Apellidos: data.Apellidos,
		Email:     data.Email,
		Password:  data.Password,
		Rol:       models.RolSocio,
	})
	if err != nil {
		r.fail(registroErrorMessage(err))
		return nil, err
	}

	socio, err := r.socios.Registrar(ctx, models.RegistrarSocioRequest{
		UserID:          usuario.ID,
		Profesion:       data.Profesion,
		Direccion:       data.Direccion,
		Telefono:        data.Telefono,
		MembresiaPlanID: data.MembresiaPlanID,
	})
	if err != nil {
		r.fail(registroErrorMessage(err))
		return nil, err
	}
	return socio, nil
}

func registroErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Mensaje != "" {
		return apiErr.Mensaje
	}
	return "Error al registrar socio"
}
