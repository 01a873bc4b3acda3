package models

// MetodoPago is the fixed set of payment methods the client offers. Card
// details collected alongside MetodoTarjeta are presentation-only and are
// never part of any request body.
type MetodoPago string

const (
	MetodoTarjeta       MetodoPago = "tarjeta"
	MetodoTransferencia MetodoPago = "transferencia"
	MetodoEfectivo      MetodoPago = "efectivo"
)

// Payment lifecycle labels as reported by the backend.
const (
	PagoPendiente  = "pendiente"
	PagoConfirmado = "confirmado"
	PagoCancelado  = "cancelado"
)

type PagoRequest struct {
	UsuarioID   string     `json:"usuarioId"`
	MembresiaID string     `json:"membresiaId"`
	Monto       float64    `json:"monto"`
	MetodoPago  MetodoPago `json:"metodoPago"`
}

type PagoResponse struct {
	ID            string  `json:"id"`
	UsuarioNombre string  `json:"usuarioNombre"`
	Monto         float64 `json:"monto"`
	Estado        string  `json:"estado"`
	FechaPago     string  `json:"fechaPago"`
}
