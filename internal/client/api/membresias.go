package api

import (
	"context"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// MembresiasService maps the /Membresia resource.
type MembresiasService struct {
	client *Client
}

// MensajeResponse is the backend's generic acknowledgement body.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}

func (s *MembresiasService) Listar(ctx context.Context) ([]models.MembresiaResponse, error) {
	var out []models.MembresiaResponse
	if err := s.client.do(ctx, http.MethodGet, "/Membresia/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MembresiasService) ObtenerPorUsuario(ctx context.Context, usuarioID string) (*models.Membresia, error) {
	var out models.Membresia
	if err := s.client.do(ctx, http.MethodGet, "/Membresia/usuario/"+usuarioID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Renovar asks the backend to extend the membership. The backend recomputes
// fechaFin and estado; the client refetches afterwards instead of guessing.
func (s *MembresiasService) Renovar(ctx context.Context, id string) (*MensajeResponse, error) {
	var out MensajeResponse
	if err := s.client.do(ctx, http.MethodPut, "/Membresia/renovar/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
