package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Dashboard holds the admin statistics summary.
type Dashboard struct {
	status
	api   DashboardAPI
	stats *models.DashboardStats
}

func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api}
}

func (d *Dashboard) Data() *models.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

func (d *Dashboard) Fetch(ctx context.Context) error {
	d.begin()
	defer d.finish()

	stats, err := d.api.Estadisticas(ctx)
	if err != nil {
		d.fail("Error al obtener estadísticas")
		return err
	}
	d.mu.Lock()
	d.stats = stats
	d.mu.Unlock()
	return nil
}
