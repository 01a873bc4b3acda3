// Package guard gates access to role-owned surfaces. It is pure: given the
// required role and the current session it returns a decision value, and the
// caller performs the navigation.
package guard

import (
	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// Session is the identity slice the guard needs.
type Session interface {
	IsAuthenticated() bool
	Rol() models.Rol
}

// Decision is the guard's verdict. When Authorized is false, Redirect names
// the route to send the caller to instead.
type Decision struct {
	Authorized bool
	Redirect   string
}

// HomeRoute is the one route each role canonically owns. Unknown roles land
// on the login route. Because every role has exactly one home, redirecting a
// wrong-role visitor to their own home can never loop.
func HomeRoute(rol models.Rol) string {
	switch rol {
	case models.RolAdmin:
		return common.AdminHomeRoute
	case models.RolSocio:
		return common.SocioHomeRoute
	default:
		return common.LoginRoute
	}
}

// Evaluate decides whether the session may enter a surface requiring the
// given role. Unauthenticated visitors go to login; authenticated visitors
// with the wrong role go to their own home.
func Evaluate(required models.Rol, s Session) Decision {
	if !s.IsAuthenticated() {
		return Decision{Redirect: common.LoginRoute}
	}
	if s.Rol() != required {
		return Decision{Redirect: HomeRoute(s.Rol())}
	}
	return Decision{Authorized: true}
}
