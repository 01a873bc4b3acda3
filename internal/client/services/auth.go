package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// ErrLoginMessage is the only credential-failure text ever shown; backend
// detail must not leak through the login form.
const ErrLoginMessage = "Email o contraseña incorrectos"

// Auth performs login/logout against the backend and writes the result into
// the session store.
type Auth struct {
	status
	usuarios UsuariosAPI
	sess     SessionWriter
}

func NewAuth(usuarios UsuariosAPI, sess SessionWriter) *Auth {
	return &Auth{usuarios: usuarios, sess: sess}
}

// Login exchanges credentials for a session and persists it. On any failure
// — bad credentials or an unreachable server — the surfaced error is the
// same generic message, and no session is created.
func (a *Auth) Login(ctx context.Context, email, password string) (models.Usuario, error) {
	a.begin()
	defer a.finish()

	resp, err := a.usuarios.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.fail(ErrLoginMessage)
		return models.Usuario{}, err
	}
	if err := a.sess.Set(resp.User, resp.Token); err != nil {
		a.fail(ErrLoginMessage)
		return models.Usuario{}, err
	}
	return resp.User, nil
}

// Logout clears the session unconditionally. Safe to call repeatedly.
func (a *Auth) Logout() {
	a.sess.Clear()
}
