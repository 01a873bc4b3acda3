package cli

import (
	"context"
	"fmt"

	"github.com/colegioprofesionales/colegio-cli/internal/client/guard"
	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the REPL moves
// to the role's home surface; on failure the single generic message is shown
// regardless of what went wrong.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Contraseña")
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, a.auth.Err())
		return err
	}

	fmt.Fprintf(a.out, "Bienvenido, %s\n", user.NombreCompleto())
	a.navigateTo(guard.HomeRoute(user.Rol))
	return nil
}

// Logout clears the session and returns to the login surface.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	a.navigateTo(common.LoginRoute)
	fmt.Fprintln(a.out, "Sesión cerrada.")
	return nil
}

// Perfil shows the session owner's account data and optionally updates it.
// Empty answers keep the current value; the session copy is refreshed with
// the server's response.
func (a *App) Perfil(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		a.navigateTo(common.LoginRoute)
		return nil
	}
	fmt.Fprintf(a.out, "Nombre: %s\nEmail:  %s\nRol:    %s\n", u.NombreCompleto(), u.Email, u.Rol)
	if exp := a.session.TokenExpiresAt(); !exp.IsZero() {
		fmt.Fprintf(a.out, "Sesión válida hasta: %s\n", exp.Format("2006-01-02 15:04"))
	}

	edit, err := GetConfirmation(a.reader, "¿Actualizar sus datos?", a.out)
	if err != nil || !edit {
		return err
	}
	var req models.UpdateUsuarioRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nombres (vacío para mantener)", &req.Nombres},
		{"Apellidos (vacío para mantener)", &req.Apellidos},
		{"Email (vacío para mantener)", &req.Email},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	updated, err := a.usuarios.Actualizar(ctx, u.ID, req)
	if err != nil {
		fmt.Fprintln(a.out, a.usuarios.Err())
		return err
	}
	if err := a.session.Set(*updated, a.session.Token()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Perfil actualizado.")
	return nil
}
