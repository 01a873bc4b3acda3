// Package renewal implements the membership renewal & payment workflow as an
// explicit state machine: a tagged state value, a set of events, and a pure
// Transition function. The Runner drives the network protocol around it.
//
// The flow is linear and resumable:
//
//	Idle → ConfirmRenovacion → CollectPago → Submitting → Success | Failed
//
// Two invariants live here rather than in the UI so they are unit-testable:
// cancellation is rejected once Submitting begins, and a payment failure
// resumes at CollectPago while an orphaned-payment failure returns to Idle.
package renewal

import (
	"time"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

type Tag int

const (
	TagIdle Tag = iota
	TagConfirm
	TagCollect
	TagSubmitting
	TagSuccess
	TagFailed
)

// FailKind distinguishes the two failure exits of the protocol.
type FailKind int

const (
	// FailPago: the payment call failed, nothing was charged. The user may
	// retry from CollectPago without re-confirming intent.
	FailPago FailKind = iota

	// FailRenovacionHuerfana: the payment was recorded but the renewal call
	// failed. Retrying would charge twice, so the flow returns to Idle with
	// the support-contact message.
	FailRenovacionHuerfana
)

// MensajeRenovacionHuerfana tells the user a payment exists and support must
// finish the renewal; it deliberately does not ask them to pay again.
const MensajeRenovacionHuerfana = "El pago fue registrado pero la renovación no se completó. Contacte a soporte; no realice un nuevo pago."

// MensajePagoFallido is the generic retryable failure text.
const MensajePagoFallido = "Error al procesar la renovación. Intente nuevamente."

// Tarjeta holds the card fields collected when the method is tarjeta. They
// are presentation-only: validated for shape, never serialized into any
// request body.
type Tarjeta struct {
	Numero     string
	Expiracion string
	CVV        string
	Titular    string
}

// Completa reports whether every card field was filled in.
func (t Tarjeta) Completa() bool {
	return t.Numero != "" && t.Expiracion != "" && t.CVV != "" && t.Titular != ""
}

// State is the workflow's full value. Fields beyond Tag are meaningful only
// for the tags that carry them.
type State struct {
	Tag       Tag
	Membresia models.MembresiaResponse
	Monto     float64
	Metodo    models.MetodoPago
	Tarjeta   Tarjeta
	Mensaje   string
	Kind      FailKind
}

// Event is a workflow input. The concrete types below are the only ones.
type Event interface {
	isEvent()
}

// Start opens the confirmation step for an eligible membership. The amount
// is resolved from the plan list with the membership's stored amount as
// fallback. Ineligible or undated memberships leave the state at Idle.
type Start struct {
	Membresia models.MembresiaResponse
	Planes    []models.Plan
	Ventana   int
	Now       time.Time
}

// Confirm moves from confirmation to payment collection.
type Confirm struct{}

// Cancel aborts the flow before submission. Ignored while Submitting.
type Cancel struct{}

// Submit starts the payment protocol with the collected method and, for
// tarjeta, the card fields.
type Submit struct {
	Metodo  models.MetodoPago
	Tarjeta Tarjeta
}

// PagoFallido reports that the payment call failed.
type PagoFallido struct {
	Mensaje string
}

// RenovacionFallida reports that the renewal call failed after a recorded
// payment.
type RenovacionFallida struct{}

// Exito reports that both calls succeeded and local state was refetched.
type Exito struct{}

// Retry returns from a retryable failure to payment collection.
type Retry struct{}

// Acknowledge dismisses a terminal notice (Success, or the orphaned-payment
// failure) and returns to Idle.
type Acknowledge struct{}

func (Start) isEvent()             {}
func (Confirm) isEvent()           {}
func (Cancel) isEvent()            {}
func (Submit) isEvent()            {}
func (PagoFallido) isEvent()       {}
func (RenovacionFallida) isEvent() {}
func (Exito) isEvent()             {}
func (Retry) isEvent()             {}
func (Acknowledge) isEvent()       {}

// Transition is the single reducer: (state, event) → state. Events that make
// no sense in the current state leave it unchanged, which is what makes the
// no-cancel-during-submit rule checkable here.
func Transition(s State, e Event) State {
	switch ev := e.(type) {
	case Start:
		if s.Tag != TagIdle {
			return s
		}
		dias, err := models.DiasRestantes(ev.Membresia.FechaFin, ev.Now)
		if err != nil || !models.EsRenovable(dias, ev.Ventana) {
			return s
		}
		return State{
			Tag:       TagConfirm,
			Membresia: ev.Membresia,
			Monto:     models.ResolverMonto(ev.Membresia, ev.Planes),
		}

	case Confirm:
		if s.Tag != TagConfirm {
			return s
		}
		s.Tag = TagCollect
		s.Mensaje = ""
		return s

	case Cancel:
		switch s.Tag {
		case TagConfirm, TagCollect:
			return State{}
		default:
			// Submitting cannot be cancelled: the payment call may already
			// be in flight.
			return s
		}

	case Submit:
		if s.Tag != TagCollect {
			return s
		}
		if !validMetodo(ev.Metodo) {
			s.Mensaje = "Seleccione un método de pago válido"
			return s
		}
		if ev.Metodo == models.MetodoTarjeta && !ev.Tarjeta.Completa() {
			s.Mensaje = "Complete todos los datos de la tarjeta"
			return s
		}
		s.Tag = TagSubmitting
		s.Metodo = ev.Metodo
		s.Tarjeta = ev.Tarjeta
		s.Mensaje = ""
		return s

	case PagoFallido:
		if s.Tag != TagSubmitting {
			return s
		}
		s.Tag = TagFailed
		s.Kind = FailPago
		if ev.Mensaje != "" {
			s.Mensaje = ev.Mensaje
		} else {
			s.Mensaje = MensajePagoFallido
		}
		return s

	case RenovacionFallida:
		if s.Tag != TagSubmitting {
			return s
		}
		s.Tag = TagFailed
		s.Kind = FailRenovacionHuerfana
		s.Mensaje = MensajeRenovacionHuerfana
		return s

	case Exito:
		if s.Tag != TagSubmitting {
			return s
		}
		return State{Tag: TagSuccess, Membresia: s.Membresia, Monto: s.Monto}

	case Retry:
		if s.Tag != TagFailed || s.Kind != FailPago {
			return s
		}
		s.Tag = TagCollect
		s.Mensaje = ""
		return s

	case Acknowledge:
		switch s.Tag {
		case TagSuccess:
			return State{}
		case TagFailed:
			if s.Kind == FailRenovacionHuerfana {
				return State{}
			}
			return s
		default:
			return s
		}
	}
	return s
}

func validMetodo(m models.MetodoPago) bool {
	switch m {
	case models.MetodoTarjeta, models.MetodoTransferencia, models.MetodoEfectivo:
		return true
	}
	return false
}
