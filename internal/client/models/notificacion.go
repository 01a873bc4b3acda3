package models

type Notificacion struct {
	ID            string `json:"id"`
	Titulo        string `json:"titulo"`
	Mensaje       string `json:"mensaje"`
	FechaCreacion string `json:"fechaCreacion"`
	Leida         bool   `json:"leida"`
}

// RecordatorioRequest asks the backend to send a renewal reminder to the
// member owning the given membership.
type RecordatorioRequest struct {
	MembresiaID string `json:"membresiaId"`
	UsuarioID   string `json:"usuarioId"`
}
