package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// UsuariosService maps the /Usuario resource.
type UsuariosService struct {
	client *Client
}

// Login exchanges credentials for a session. A 401 here means bad
// credentials, never a lost session, so it maps to ErrInvalidCredentials
// and does not touch the unauthorized observer.
func (s *UsuariosService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := s.client.doAnonymous(ctx, http.MethodPost, "/Usuario/login", req, &out); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	return &out, nil
}

// Registrar creates a user account. Reachable without a session (public
// self-registration), hence anonymous.
func (s *UsuariosService) Registrar(ctx context.Context, req models.RegisterRequest) (*models.Usuario, error) {
	var out models.Usuario
	if err := s.client.doAnonymous(ctx, http.MethodPost, "/Usuario/registrar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Listar(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	if err := s.client.do(ctx, http.MethodGet, "/Usuario", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UsuariosService) ObtenerPorID(ctx context.Context, id string) (*models.Usuario, error) {
	var out models.Usuario
	if err := s.client.do(ctx, http.MethodGet, "/Usuario/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsuariosService) Actualizar(ctx context.Context, id string, req models.UpdateUsuarioRequest) (*models.Usuario, error) {
	var out models.Usuario
	if err := s.client.do(ctx, http.MethodPut, "/Usuario/actualizar/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
