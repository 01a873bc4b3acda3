package renewal

import (
	"context"
	"errors"
	"sync"

	"github.com/colegioprofesionales/colegio-cli/internal/client/api"
	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
	"github.com/colegioprofesionales/colegio-cli/internal/logging"
)

// PagoRegistrar is the slice of the payments API the runner needs.
type PagoRegistrar interface {
	Registrar(ctx context.Context, req models.PagoRequest) (*models.PagoResponse, error)
}

// Renovador is the slice of the memberships API the runner needs.
type Renovador interface {
	Renovar(ctx context.Context, id string) (*api.MensajeResponse, error)
}

// Runner owns one workflow instance: the current State plus the network
// protocol executed in Submitting. Payment strictly precedes renewal; a
// renewal is never requested after a failed payment.
type Runner struct {
	pagos      PagoRegistrar
	membresias Renovador
	refetch    func(ctx context.Context) error
	log        logging.Logger

	mu    sync.Mutex
	state State
	epoch int
}

type RunnerOption func(*Runner)

func WithLogger(l logging.Logger) RunnerOption {
	return func(r *Runner) { r.log = l.With("component", "renewal") }
}

// NewRunner builds a Runner. refetch is invoked after a successful renewal
// so days-remaining and estado reflect server truth; it may be nil in tests.
func NewRunner(pagos PagoRegistrar, membresias Renovador, refetch func(ctx context.Context) error, opts ...RunnerOption) *Runner {
	r := &Runner{pagos: pagos, membresias: membresias, refetch: refetch}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns a snapshot of the workflow state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Dispatch applies a UI event (Start, Confirm, Cancel, Retry, Acknowledge)
// and returns the resulting state. Network outcomes are fed by Submit only.
func (r *Runner) Dispatch(e Event) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = Transition(r.state, e)
	return r.state
}

// Reset abandons the workflow unconditionally and bumps the epoch so any
// in-flight Submit result is discarded instead of resurrecting a flow the
// user already left.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.epoch++
	r.state = State{}
}

// apply feeds a protocol outcome, unless the workflow was reset while the
// calls were in flight.
func (r *Runner) apply(epoch int, e Event) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.epoch != epoch {
		return r.state
	}
	r.state = Transition(r.state, e)
	return r.state
}

// Submit validates the collected payment input and, when accepted, runs the
// two-call protocol: register the payment, then renew the membership. The
// calls are sequential on purpose — renewal without a confirmed payment
// would let a member renew without paying.
func (r *Runner) Submit(ctx context.Context, metodo models.MetodoPago, tarjeta Tarjeta) State {
	r.mu.Lock()
	next := Transition(r.state, Submit{Metodo: metodo, Tarjeta: tarjeta})
	r.state = next
	if next.Tag != TagSubmitting {
		r.mu.Unlock()
		return next
	}
	epoch := r.epoch
	m := next.Membresia
	monto := next.Monto
	r.mu.Unlock()

	_, err := r.pagos.Registrar(ctx, models.PagoRequest{
		UsuarioID:   m.UsuarioID,
		MembresiaID: m.ID,
		Monto:       monto,
		MetodoPago:  metodo,
	})
	if err != nil {
		if r.log != nil {
			r.log.Warn(ctx, "payment failed, renewal not attempted", "membresiaId", m.ID, "error", err)
		}
		return r.apply(epoch, PagoFallido{Mensaje: pagoErrorMessage(err)})
	}

	if _, err := r.membresias.Renovar(ctx, m.ID); err != nil {
		if r.log != nil {
			r.log.Error(ctx, "renewal failed after recorded payment", "membresiaId", m.ID, "error", err)
		}
		return r.apply(epoch, RenovacionFallida{})
	}

	if r.refetch != nil {
		// best effort: the renewal itself already succeeded
		_ = r.refetch(ctx)
	}
	if r.log != nil {
		r.log.Info(ctx, "renewal completed", "membresiaId", m.ID, "monto", monto)
	}
	return r.apply(epoch, Exito{})
}

func pagoErrorMessage(err error) string {
	if errors.Is(err, common.ErrUnauthorized) {
		// the global 401 observer already cleared the session; the local
		// message is whatever the banner shows before navigation
		return MensajePagoFallido
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Mensaje != "" {
		return apiErr.Mensaje
	}
	return MensajePagoFallido
}
