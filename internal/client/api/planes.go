package api

import (
	"context"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// PlanesService maps the read-only /Plan resource.
type PlanesService struct {
	client *Client
}

// Listar is fetched during public registration as well, hence anonymous.
func (s *PlanesService) Listar(ctx context.Context) ([]models.Plan, error) {
	var out []models.Plan
	if err := s.client.doAnonymous(ctx, http.MethodGet, "/Plan/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
