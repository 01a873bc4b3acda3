package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Membresia holds the single membership record of the logged-in socio.
// Renewing goes through the renewal workflow, which refetches this container
// after a successful protocol run; there is no direct renew call here.
type Membresia struct {
	status
	api       MembresiasAPI
	membresia *models.Membresia
}

func NewMembresia(api MembresiasAPI) *Membresia {
	return &Membresia{api: api}
}

func (m *Membresia) Data() *models.Membresia {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.membresia
}

func (m *Membresia) Fetch(ctx context.Context, usuarioID string) error {
	m.begin()
	defer m.finish()

	data, err := m.api.ObtenerPorUsuario(ctx, usuarioID)
	if err != nil {
		m.fail("Error al obtener membresía")
		return err
	}
	m.mu.Lock()
	m.membresia = data
	m.mu.Unlock()
	return nil
}

// MembresiasList is the admin-side listing of every membership.
type MembresiasList struct {
	status
	api        MembresiasAPI
	membresias []models.MembresiaResponse
}

func NewMembresiasList(api MembresiasAPI) *MembresiasList {
	return &MembresiasList{api: api}
}

func (m *MembresiasList) Data() []models.MembresiaResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.membresias
}

func (m *MembresiasList) Fetch(ctx context.Context) error {
	m.begin()
	defer m.finish()

	data, err := m.api.Listar(ctx)
	if err != nil {
		m.fail("Error al obtener membresías")
		return err
	}
	m.mu.Lock()
	m.membresias = data
	m.mu.Unlock()
	return nil
}
