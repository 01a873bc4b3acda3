package api

import (
	"context"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// PagosService maps the /Pago resource. Payments are immutable once created;
// there is no update or delete here on purpose.
type PagosService struct {
	client *Client
}

func (s *PagosService) Listar(ctx context.Context) ([]models.PagoResponse, error) {
	var out []models.PagoResponse
	if err := s.client.do(ctx, http.MethodGet, "/Pago/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PagosService) Registrar(ctx context.Context, req models.PagoRequest) (*models.PagoResponse, error) {
	var out models.PagoResponse
	if err := s.client.do(ctx, http.MethodPost, "/Pago/registrar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
