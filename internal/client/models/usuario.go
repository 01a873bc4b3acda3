// Package models defines the request/response shapes exchanged with the
// Colegio de Profesionales backend, plus the derived state the client
// computes from them (days remaining, renewal eligibility, urgency).
//
// The backend owns all business rules; these types only mirror its wire
// contract. Dates travel as ISO-8601 strings and are parsed on demand.
package models

// Rol identifies what a user is allowed to see.
type Rol string

const (
	RolAdmin   Rol = "Admin"
	RolSocio   Rol = "Socio"
	RolUsuario Rol = "Usuario"
)

type Usuario struct {
	ID           string `json:"id"`
	Nombres      string `json:"nombres"`
	Apellidos    string `json:"apellidos"`
	Email        string `json:"email"`
	ImagenPerfil string `json:"imagenPerfilUrl,omitempty"`
	Rol          Rol    `json:"rol"`
}

// NombreCompleto joins given and family names for display.
func (u Usuario) NombreCompleto() string {
	if u.Nombres == "" {
		return u.Apellidos
	}
	if u.Apellidos == "" {
		return u.Nombres
	}
	return u.Nombres + " " + u.Apellidos
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  Usuario `json:"user"`
	Token string  `json:"token"`
}

type RegisterRequest struct {
	Nombres      string `json:"nombres"`
	Apellidos    string `json:"apellidos"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ImagenPerfil string `json:"imagenPerfilUrl,omitempty"`
	Rol          Rol    `json:"rol"`
}

// UpdateUsuarioRequest carries a partial update; empty fields are omitted so
// the backend leaves them unchanged.
type UpdateUsuarioRequest struct {
	Nombres      string `json:"nombres,omitempty"`
	Apellidos    string `json:"apellidos,omitempty"`
	Email        string `json:"email,omitempty"`
	ImagenPerfil string `json:"imagenPerfilUrl,omitempty"`
	Rol          Rol    `json:"rol,omitempty"`
}
