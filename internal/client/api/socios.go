package api

import (
	"context"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// SociosService maps the /Socio resource.
type SociosService struct {
	client *Client
}

// Registrar creates the member record right after user registration, before
// any session exists, so it goes through the anonymous path.
func (s *SociosService) Registrar(ctx context.Context, req models.RegistrarSocioRequest) (*models.Socio, error) {
	var out models.Socio
	if err := s.client.doAnonymous(ctx, http.MethodPost, "/Socio/registrar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SociosService) Listar(ctx context.Context) ([]models.Socio, error) {
	var out []models.Socio
	if err := s.client.do(ctx, http.MethodGet, "/Socio/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SociosService) ObtenerPorID(ctx context.Context, id string) (*models.Socio, error) {
	var out models.Socio
	if err := s.client.do(ctx, http.MethodGet, "/Socio/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SociosService) Actualizar(ctx context.Context, req models.ActualizarSocioRequest) (*models.Socio, error) {
	var out models.Socio
	if err := s.client.do(ctx, http.MethodPut, "/Socio/actualizar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActualizarEstado sends the new estado as a raw JSON string, which is the
// body shape this endpoint expects.
func (s *SociosService) ActualizarEstado(ctx context.Context, id string, estado models.EstadoSocio) error {
	return s.client.do(ctx, http.MethodPut, "/Socio/"+id+"/estado", string(estado), nil)
}

func (s *SociosService) Eliminar(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/Socio/"+id, nil, nil)
}
