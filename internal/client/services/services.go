// Package services contains the per-resource state containers consumed by
// the CLI surfaces. Every container follows the same discipline: an action
// marks the container loading and clears the previous error, a failure sets
// a human-readable localized error while leaving previously fetched data
// available, and loading is always cleared on the way out.
//
// Containers own their state exclusively; there is no shared cache between
// them. Each surface refetches independently, trading a few redundant calls
// for the absence of stale-cache coordination.
package services

import (
	"context"
	"sync"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// API dependency surfaces, one per backend resource. The api package's
// services satisfy them; tests substitute struct fakes.

type UsuariosAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Registrar(ctx context.Context, req models.RegisterRequest) (*models.Usuario, error)
	Listar(ctx context.Context) ([]models.Usuario, error)
	ObtenerPorID(ctx context.Context, id string) (*models.Usuario, error)
	Actualizar(ctx context.Context, id string, req models.UpdateUsuarioRequest) (*models.Usuario, error)
}

type SociosAPI interface {
	Registrar(ctx context.Context, req models.RegistrarSocioRequest) (*models.Socio, error)
	Listar(ctx context.Context) ([]models.Socio, error)
	ObtenerPorID(ctx context.Context, id string) (*models.Socio, error)
	Actualizar(ctx context.Context, req models.ActualizarSocioRequest) (*models.Socio, error)
	ActualizarEstado(ctx context.Context, id string, estado models.EstadoSocio) error
	Eliminar(ctx context.Context, id string) error
}

type PlanesAPI interface {
	Listar(ctx context.Context) ([]models.Plan, error)
}

type MembresiasAPI interface {
	Listar(ctx context.Context) ([]models.MembresiaResponse, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID string) (*models.Membresia, error)
}

type PagosAPI interface {
	Listar(ctx context.Context) ([]models.PagoResponse, error)
	Registrar(ctx context.Context, req models.PagoRequest) (*models.PagoResponse, error)
}

type NotificacionesAPI interface {
	ListarPorUsuario(ctx context.Context, usuarioID string) ([]models.Notificacion, error)
	EnviarRecordatorio(ctx context.Context, req models.RecordatorioRequest) error
}

type DashboardAPI interface {
	Estadisticas(ctx context.Context) (*models.DashboardStats, error)
}

// SessionWriter is the slice of the session store the auth service mutates.
type SessionWriter interface {
	Set(user models.Usuario, token string) error
	Clear()
}

// status is the loading/error state shared by every container. The mutex
// also guards the embedding container's data fields.
type status struct {
	mu      sync.Mutex
	loading bool
	err     string
}

// begin marks the container loading and clears the previous error; every
// action supersedes whatever error the last one left behind.
func (s *status) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *status) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *status) fail(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// Loading reports whether an action is in flight.
func (s *status) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last action's localized error, empty when the last action
// succeeded. Errors persist until the next action supersedes them.
func (s *status) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
