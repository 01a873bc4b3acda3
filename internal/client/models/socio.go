package models

// EstadoSocio is the member lifecycle label. Transitions are
// backend-authoritative; the client only displays them and forwards the
// admin's explicit estado updates.
type EstadoSocio string

const (
	SocioActivo    EstadoSocio = "Activo"
	SocioInactivo  EstadoSocio = "Inactivo"
	SocioPendiente EstadoSocio = "Pendiente"
	SocioExpirado  EstadoSocio = "Expirado"
)

type Socio struct {
	ID              string      `json:"id"`
	Nombres         string      `json:"nombres"`
	Apellidos       string      `json:"apellidos"`
	Email           string      `json:"email"`
	CedulaIdentidad string      `json:"cedulaIdentidad"`
	Profesion       string      `json:"profesion"`
	EstadoSocio     EstadoSocio `json:"estadoSocio"`
	FechaRegistro   string      `json:"fechaRegistro"`
}

type RegistrarSocioRequest struct {
	UserID          string `json:"userId"`
	Profesion       string `json:"profesion"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	MembresiaPlanID string `json:"membresiaPlanId"`
}

type ActualizarSocioRequest struct {
	ID              string      `json:"id"`
	CedulaIdentidad string      `json:"cedulaIdentidad"`
	Profesion       string      `json:"profesion"`
	EstadoSocio     EstadoSocio `json:"estadoSocio"`
}
