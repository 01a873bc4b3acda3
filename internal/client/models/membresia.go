package models

import (
	"math"
	"time"
)

// EstadoMembresia is the membership lifecycle label as reported by the
// backend. The client never computes transitions between these values; it
// only derives display state (days remaining, urgency) from the dates.
type EstadoMembresia string

const (
	MembresiaActiva              EstadoMembresia = "Activa"
	MembresiaPendienteRenovacion EstadoMembresia = "PendienteRenovacion"
	MembresiaExpirada            EstadoMembresia = "Expirada"
)

// VentanaRenovacionDias is the default renewal window: the renew action
// appears this many days before the membership expires.
const VentanaRenovacionDias = 32

// UmbralUrgenteDias marks a soon-to-expire membership as urgent in the
// admin renovaciones table.
const UmbralUrgenteDias = 15

// MontoPorDefecto is the fallback renewal amount used when neither the plan
// list nor the membership record carries a usable amount.
const MontoPorDefecto = 500

// Membresia is the single membership record of one user.
type Membresia struct {
	ID          string          `json:"id"`
	PlanNombre  string          `json:"planNombre"`
	FechaInicio string          `json:"fechaInicio"`
	FechaFin    string          `json:"fechaFin"`
	Estado      EstadoMembresia `json:"estado"`
	Monto       float64         `json:"monto"`
}

// MembresiaResponse is the admin-side listing row, which additionally names
// the owning user.
type MembresiaResponse struct {
	ID            string          `json:"id"`
	PlanNombre    string          `json:"planNombre"`
	UsuarioID     string          `json:"usuarioId"`
	UsuarioNombre string          `json:"usuarioNombre"`
	FechaInicio   string          `json:"fechaInicio"`
	FechaFin      string          `json:"fechaFin"`
	Estado        EstadoMembresia `json:"estado"`
	Monto         float64         `json:"monto"`
}

// ParseFecha parses a backend date, accepting full timestamps and bare dates.
func ParseFecha(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// DiasRestantes returns the whole days between now and fechaFin, rounding up
// partial days. Negative means the membership already expired; zero means it
// expires today and is still within the window.
func DiasRestantes(fechaFin string, now time.Time) (int, error) {
	fin, err := ParseFecha(fechaFin)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(fin.Sub(now).Hours() / 24)), nil
}

// EsRenovable reports whether the renew/reactivate action is available:
// already expired, or within ventana days of expiring.
func EsRenovable(dias, ventana int) bool {
	return dias < 0 || dias <= ventana
}

// AccionLabel is the user-facing label of the renewal action.
func AccionLabel(dias int) string {
	if dias < 0 {
		return "Reactivar"
	}
	return "Renovar"
}

// Urgencia classifies a row in the admin renovaciones table.
type Urgencia string

const (
	UrgenciaProximo Urgencia = "proximo"
	UrgenciaUrgente Urgencia = "urgente"
	UrgenciaVencido Urgencia = "vencido"
)

// ClasificarUrgencia maps a membership's estado and days remaining onto the
// table badge. Anything the backend no longer reports as active or pending
// renewal counts as vencido regardless of the date math.
func ClasificarUrgencia(estado EstadoMembresia, dias int) Urgencia {
	switch estado {
	case MembresiaActiva, MembresiaPendienteRenovacion:
		if dias <= UmbralUrgenteDias {
			return UrgenciaUrgente
		}
		return UrgenciaProximo
	default:
		return UrgenciaVencido
	}
}

// ResolverMonto determines the renewal amount: the matching plan's current
// price when the plan list has one, otherwise the amount stored on the
// membership, otherwise MontoPorDefecto. The fallback chain is deliberate:
// a missing plan match must not block a renewal.
func ResolverMonto(m MembresiaResponse, planes []Plan) float64 {
	for _, p := range planes {
		if p.Nombre == m.PlanNombre {
			return p.Precio
		}
	}
	if m.Monto > 0 {
		return m.Monto
	}
	return MontoPorDefecto
}
