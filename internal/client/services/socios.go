package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Socios is the admin-side member list container. Mutations that let the
// server recompute derived fields (estado updates) refetch the whole list
// instead of patching locally.
type Socios struct {
	status
	api    SociosAPI
	socios []models.Socio
}

func NewSocios(api SociosAPI) *Socios {
	return &Socios{api: api}
}

func (s *Socios) Data() []models.Socio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.socios
}

func (s *Socios) Fetch(ctx context.Context) error {
	s.begin()
	defer s.finish()

	data, err := s.api.Listar(ctx)
	if err != nil {
		s.fail("Error al obtener socios")
		return err
	}
	s.mu.Lock()
	s.socios = data
	s.mu.Unlock()
	return nil
}

func (s *Socios) Actualizar(ctx context.Context, req models.ActualizarSocioRequest) error {
	s.begin()
	if _, err := s.api.Actualizar(ctx, req); err != nil {
		s.fail("Error al actualizar socio")
		s.finish()
		return err
	}
	s.finish()
	return s.Fetch(ctx)
}

func (s *Socios) ActualizarEstado(ctx context.Context, id string, estado models.EstadoSocio) error {
	s.begin()
	if err := s.api.ActualizarEstado(ctx, id, estado); err != nil {
		s.fail("Error al actualizar socio")
		s.finish()
		return err
	}
	s.finish()
	return s.Fetch(ctx)
}

// Eliminar deletes a member and drops it from the list once the server
// confirmed the deletion.
func (s *Socios) Eliminar(ctx context.Context, id string) error {
	s.begin()
	defer s.finish()

	if err := s.api.Eliminar(ctx, id); err != nil {
		s.fail("Error al eliminar socio")
		return err
	}
	s.mu.Lock()
	kept := s.socios[:0]
	for _, socio := range s.socios {
		if socio.ID != id {
			kept = append(kept, socio)
		}
	}
	s.socios = kept
	s.mu.Unlock()
	return nil
}
