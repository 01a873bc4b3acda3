package renewal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colegioprofesionales/colegio-cli/internal/client/api"
	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// transcript records the order of protocol calls across both fakes.
type transcript struct {
	calls []string
}

type fakePagos struct {
	t   *transcript
	ret *models.PagoResponse
	err error

	last   models.PagoRequest
	onCall func()
	nCalls int
}

func (f *fakePagos) Registrar(ctx context.Context, req models.PagoRequest) (*models.PagoResponse, error) {
	f.t.calls = append(f.t.calls, "pago")
	f.last = req
	f.nCalls++
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.ret != nil {
		return f.ret, nil
	}
	return &models.PagoResponse{ID: "pg1", Estado: models.PagoConfirmado}, nil
}

type fakeMembresias struct {
	t   *transcript
	err error

	lastID string
	nCalls int
}

func (f *fakeMembresias) Renovar(ctx context.Context, id string) (*api.MensajeResponse, error) {
	f.t.calls = append(f.t.calls, "renovar")
	f.lastID = id
	f.nCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &api.MensajeResponse{Mensaje: "renovada"}, nil
}

func newTestRunner(pagosErr, renovarErr error) (*Runner, *fakePagos, *fakeMembresias, *int) {
	tr := &transcript{}
	pagos := &fakePagos{t: tr, err: pagosErr}
	membresias := &fakeMembresias{t: tr, err: renovarErr}
	refetches := 0
	r := NewRunner(pagos, membresias, func(ctx context.Context) error {
		tr.calls = append(tr.calls, "refetch")
		refetches++
		return nil
	})
	return r, pagos, membresias, &refetches
}

func advanceToCollect(t *testing.T, r *Runner, days int) {
	t.Helper()
	require.Equal(t, TagConfirm, r.Dispatch(start(days)).Tag)
	require.Equal(t, TagCollect, r.Dispatch(Confirm{}).Tag)
}

// Scenario: membership expiring in 10 days, plan price 500, card payment.
// The payment body must carry the resolved amount, the renewal must follow
// the payment response, and the refetch must follow the renewal.
func TestRunner_HappyPathOrdering(t *testing.T) {
	r, pagos, membresias, refetches := newTestRunner(nil, nil)
	advanceToCollect(t, r, 10)

	s := r.Submit(context.Background(), models.MetodoTarjeta, tarjetaCompleta())
	require.Equal(t, TagSuccess, s.Tag)

	require.Equal(t, []string{"pago", "renovar", "refetch"}, pagos.t.calls)
	require.Equal(t, models.PagoRequest{
		UsuarioID:   "u1",
		MembresiaID: "m1",
		Monto:       500,
		MetodoPago:  models.MetodoTarjeta,
	}, pagos.last)
	require.Equal(t, "m1", membresias.lastID)
	require.Equal(t, 1, *refetches)
}

// Card fields are never part of the payment body; only method and amount
// are persisted.
func TestRunner_CardDataNeverLeavesProcess(t *testing.T) {
	r, pagos, _, _ := newTestRunner(nil, nil)
	advanceToCollect(t, r, 10)

	tarjeta := tarjetaCompleta()
	r.Submit(context.Background(), models.MetodoTarjeta, tarjeta)

	body, err := json.Marshal(pagos.last)
	require.NoError(t, err)
	require.NotContains(t, string(body), tarjeta.Numero)
	require.NotContains(t, string(body), tarjeta.CVV)
}

func TestRunner_PaymentFailureNeverRenews(t *testing.T) {
	r, pagos, membresias, refetches := newTestRunner(errors.New("tarjeta rechazada"), nil)
	advanceToCollect(t, r, 10)

	s := r.Submit(context.Background(), models.MetodoTarjeta, tarjetaCompleta())

	require.Equal(t, TagFailed, s.Tag)
	require.Equal(t, FailPago, s.Kind)
	require.Equal(t, 1, pagos.nCalls)
	require.Equal(t, 0, membresias.nCalls)
	require.Equal(t, 0, *refetches)

	// retry resumes at CollectPago
	require.Equal(t, TagCollect, r.Dispatch(Retry{}).Tag)
}

func TestRunner_PaymentFailureSurfacesServerMessage(t *testing.T) {
	r, _, _, _ := newTestRunner(&api.Error{Status: http.StatusUnprocessableEntity, Mensaje: "monto inválido"}, nil)
	advanceToCollect(t, r, 10)

	s := r.Submit(context.Background(), models.MetodoEfectivo, Tarjeta{})
	require.Equal(t, "monto inválido", s.Mensaje)
}

// Scenario D: payment succeeds, renewal fails. The workflow must surface the
// distinct support-contact message and go back to Idle, not CollectPago.
func TestRunner_OrphanedPaymentReturnsToIdle(t *testing.T) {
	r, pagos, membresias, refetches := newTestRunner(nil, errors.New("500"))
	advanceToCollect(t, r, 10)

	s := r.Submit(context.Background(), models.MetodoTarjeta, tarjetaCompleta())

	require.Equal(t, TagFailed, s.Tag)
	require.Equal(t, FailRenovacionHuerfana, s.Kind)
	require.Equal(t, MensajeRenovacionHuerfana, s.Mensaje)
	require.Equal(t, 1, pagos.nCalls)
	require.Equal(t, 1, membresias.nCalls)
	require.Equal(t, 0, *refetches)

	require.Equal(t, TagIdle, r.Dispatch(Acknowledge{}).Tag)
}

// Scenario C: payment rejected with 401. The renewal call must never happen.
func TestRunner_UnauthorizedPaymentNeverRenews(t *testing.T) {
	r, _, membresias, _ := newTestRunner(common.ErrUnauthorized, nil)
	advanceToCollect(t, r, 10)

	s := r.Submit(context.Background(), models.MetodoTarjeta, tarjetaCompleta())

	require.Equal(t, TagFailed, s.Tag)
	require.Equal(t, 0, membresias.nCalls)
}

func TestRunner_SubmitRejectedOutsideCollect(t *testing.T) {
	r, pagos, _, _ := newTestRunner(nil, nil)

	s := r.Submit(context.Background(), models.MetodoEfectivo, Tarjeta{})
	require.Equal(t, TagIdle, s.Tag)
	require.Equal(t, 0, pagos.nCalls)
}

// A reset while the protocol is in flight bumps the epoch; the stale
// outcome must be discarded instead of resurrecting the flow.
func TestRunner_StaleOutcomeDiscardedAfterReset(t *testing.T) {
	r, pagos, _, _ := newTestRunner(nil, nil)
	advanceToCollect(t, r, 10)

	pagos.onCall = func() { r.Reset() }

	s := r.Submit(context.Background(), models.MetodoEfectivo, Tarjeta{})
	require.Equal(t, TagIdle, s.Tag)
	require.Equal(t, TagIdle, r.State().Tag)
}
