package api

import (
	"context"
	"net/http"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// NotificacionesService maps the /Notificacion resource.
type NotificacionesService struct {
	client *Client
}

func (s *NotificacionesService) ListarPorUsuario(ctx context.Context, usuarioID string) ([]models.Notificacion, error) {
	var out []models.Notificacion
	if err := s.client.do(ctx, http.MethodGet, "/Notificacion/usuario/"+usuarioID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnviarRecordatorio dispatches a renewal reminder for one membership.
func (s *NotificacionesService) EnviarRecordatorio(ctx context.Context, req models.RecordatorioRequest) error {
	return s.client.do(ctx, http.MethodPost, "/Notificacion/recordatorio", req, nil)
}
