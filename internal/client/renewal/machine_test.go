package renewal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func membresiaConVencimiento(days int) models.MembresiaResponse {
	return models.MembresiaResponse{
		ID:            "m1",
		UsuarioID:     "u1",
		UsuarioNombre: "Ana Pérez",
		PlanNombre:    "Anual",
		FechaFin:      now.AddDate(0, 0, days).Format(time.RFC3339),
		Estado:        models.MembresiaActiva,
		Monto:         450,
	}
}

func start(days int) Start {
	return Start{
		Membresia: membresiaConVencimiento(days),
		Planes:    []models.Plan{{ID: "p1", Nombre: "Anual", Precio: 500}},
		Ventana:   models.VentanaRenovacionDias,
		Now:       now,
	}
}

func tarjetaCompleta() Tarjeta {
	return Tarjeta{Numero: "4111111111111111", Expiracion: "12/27", CVV: "123", Titular: "Ana Pérez"}
}

func TestTransition_StartResolvesAmountFromPlan(t *testing.T) {
	s := Transition(State{}, start(10))

	require.Equal(t, TagConfirm, s.Tag)
	require.Equal(t, float64(500), s.Monto) // plan price, not stored amount
	require.Equal(t, "m1", s.Membresia.ID)
}

func TestTransition_StartFallsBackToStoredAmount(t *testing.T) {
	ev := start(10)
	ev.Planes = nil // no plan match

	s := Transition(State{}, ev)
	require.Equal(t, TagConfirm, s.Tag)
	require.Equal(t, float64(450), s.Monto)
}

func TestTransition_StartIgnoredWhenNotEligible(t *testing.T) {
	s := Transition(State{}, start(200))
	require.Equal(t, TagIdle, s.Tag)
}

func TestTransition_StartEligibleWhenExpired(t *testing.T) {
	s := Transition(State{}, start(-40))
	require.Equal(t, TagConfirm, s.Tag)
}

func TestTransition_StartIgnoredOnUnparsableDate(t *testing.T) {
	ev := start(10)
	ev.Membresia.FechaFin = "mañana"
	require.Equal(t, TagIdle, Transition(State{}, ev).Tag)
}

func TestTransition_ConfirmThenSubmit(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})
	require.Equal(t, TagCollect, s.Tag)

	s = Transition(s, Submit{Metodo: models.MetodoTarjeta, Tarjeta: tarjetaCompleta()})
	require.Equal(t, TagSubmitting, s.Tag)
	require.Equal(t, models.MetodoTarjeta, s.Metodo)
}

func TestTransition_SubmitRejectsIncompleteCard(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})

	s = Transition(s, Submit{Metodo: models.MetodoTarjeta, Tarjeta: Tarjeta{Numero: "4111"}})
	require.Equal(t, TagCollect, s.Tag)
	require.Equal(t, "Complete todos los datos de la tarjeta", s.Mensaje)
}

func TestTransition_SubmitRejectsUnknownMethod(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})

	s = Transition(s, Submit{Metodo: "cheque"})
	require.Equal(t, TagCollect, s.Tag)
	require.NotEmpty(t, s.Mensaje)
}

func TestTransition_CashNeedsNoCard(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})

	s = Transition(s, Submit{Metodo: models.MetodoEfectivo})
	require.Equal(t, TagSubmitting, s.Tag)
}

func TestTransition_CancelBeforeSubmitting(t *testing.T) {
	s := Transition(State{}, start(10))
	require.Equal(t, TagIdle, Transition(s, Cancel{}).Tag)

	s = Transition(s, Confirm{})
	require.Equal(t, TagIdle, Transition(s, Cancel{}).Tag)
}

func TestTransition_CancelRejectedWhileSubmitting(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})
	s = Transition(s, Submit{Metodo: models.MetodoEfectivo})
	require.Equal(t, TagSubmitting, s.Tag)

	// no abort mid-flight
	require.Equal(t, TagSubmitting, Transition(s, Cancel{}).Tag)
}

func TestTransition_PagoFallidoRetriesAtCollect(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})
	s = Transition(s, Submit{Metodo: models.MetodoEfectivo})

	s = Transition(s, PagoFallido{})
	require.Equal(t, TagFailed, s.Tag)
	require.Equal(t, FailPago, s.Kind)
	require.Equal(t, MensajePagoFallido, s.Mensaje)

	// retry resumes payment collection without re-confirming intent
	s = Transition(s, Retry{})
	require.Equal(t, TagCollect, s.Tag)
	require.Equal(t, "m1", s.Membresia.ID)
}

func TestTransition_RenovacionFallidaReturnsToIdleOnAcknowledge(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})
	s = Transition(s, Submit{Metodo: models.MetodoEfectivo})

	s = Transition(s, RenovacionFallida{})
	require.Equal(t, TagFailed, s.Tag)
	require.Equal(t, FailRenovacionHuerfana, s.Kind)
	require.Equal(t, MensajeRenovacionHuerfana, s.Mensaje)

	// retry must NOT resume payment collection: it would charge twice
	require.Equal(t, TagFailed, Transition(s, Retry{}).Tag)

	require.Equal(t, TagIdle, Transition(s, Acknowledge{}).Tag)
}

func TestTransition_ExitoThenAcknowledge(t *testing.T) {
	s := Transition(State{}, start(10))
	s = Transition(s, Confirm{})
	s = Transition(s, Submit{Metodo: models.MetodoTransferencia})
	s = Transition(s, Exito{})
	require.Equal(t, TagSuccess, s.Tag)

	require.Equal(t, TagIdle, Transition(s, Acknowledge{}).Tag)
}

func TestTransition_OutcomeEventsIgnoredOutsideSubmitting(t *testing.T) {
	s := Transition(State{}, start(10))
	require.Equal(t, TagConfirm, Transition(s, Exito{}).Tag)
	require.Equal(t, TagConfirm, Transition(s, PagoFallido{}).Tag)
	require.Equal(t, TagConfirm, Transition(s, RenovacionFallida{}).Tag)
}
