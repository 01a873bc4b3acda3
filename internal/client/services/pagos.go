package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Pagos lists recorded payments and registers new ones.
type Pagos struct {
	status
	api   PagosAPI
	pagos []models.PagoResponse
}

func NewPagos(api PagosAPI) *Pagos {
	return &Pagos{api: api}
}

func (p *Pagos) Data() []models.PagoResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pagos
}

func (p *Pagos) Fetch(ctx context.Context) error {
	p.begin()
	defer p.finish()

	data, err := p.api.Listar(ctx)
	if err != nil {
		p.fail("Error al obtener pagos")
		return err
	}
	p.mu.Lock()
	p.pagos = data
	p.mu.Unlock()
	return nil
}

// Registrar records a payment. The new row is appended only after the server
// confirmed it; callers that need server-recomputed fields refetch instead.
func (p *Pagos) Registrar(ctx context.Context, req models.PagoRequest) (*models.PagoResponse, error) {
	p.begin()
	defer p.finish()

	pago, err := p.api.Registrar(ctx, req)
	if err != nil {
		p.fail("Error al registrar pago")
		return nil, err
	}
	p.mu.Lock()
	p.pagos = append(p.pagos, *pago)
	p.mu.Unlock()
	return pago, nil
}
