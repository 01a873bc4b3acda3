package api

import (
	"context"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// DashboardService maps the admin statistics endpoint.
type DashboardService struct {
	client *Client
}

func (s *DashboardService) Estadisticas(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := s.client.do(ctx, http.MethodGet, "/Dashboard/estadisticas", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
