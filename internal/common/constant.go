// Package common contains shared constants and sentinel errors used across
// the Colegio de Profesionales client components.
package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation id so client-side
// logs can be matched against backend logs.
const RequestIDHeaderName = "X-Request-Id"

// LoginRoute is the navigation target used whenever the session is lost.
const LoginRoute = "/login"

// Home routes, one per role. Each role owns exactly one home route, which is
// what keeps the guard's wrong-role redirect from ever looping.
const (
	AdminHomeRoute = "/admin"
	SocioHomeRoute = "/socio"
)
