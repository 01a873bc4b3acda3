package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Planes is the read-only plan list container.
type Planes struct {
	status
	api    PlanesAPI
	planes []models.Plan
}

func NewPlanes(api PlanesAPI) *Planes {
	return &Planes{api: api}
}

func (p *Planes) Data() []models.Plan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.planes
}

func (p *Planes) Fetch(ctx context.Context) error {
	p.begin()
	defer p.finish()

	data, err := p.api.Listar(ctx)
	if err != nil {
		p.fail("Error al obtener planes")
		return err
	}
	p.mu.Lock()
	p.planes = data
	p.mu.Unlock()
	return nil
}
