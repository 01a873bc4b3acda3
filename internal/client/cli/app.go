package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/colegioprofesionales/colegio-cli/internal/client/api"
	"github.com/colegioprofesionales/colegio-cli/internal/client/config"
	"github.com/colegioprofesionales/colegio-cli/internal/client/guard"
	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/client/renewal"
	"github.com/colegioprofesionales/colegio-cli/internal/client/services"
	"github.com/colegioprofesionales/colegio-cli/internal/client/session"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
	"github.com/colegioprofesionales/colegio-cli/internal/logging"
)

// App owns the wired client: session, transport, the per-resource containers,
// and the renewal workflow runner. The REPL dispatches onto its methods.
type App struct {
	config  *config.Config
	session *session.Store
	api     *api.Client
	log     logging.Logger

	auth           *services.Auth
	registro       *services.RegistroSocio
	socios         *services.Socios
	usuarios       *services.Usuarios
	membresia      *services.Membresia
	membresias     *services.MembresiasList
	planes         *services.Planes
	pagos          *services.Pagos
	notificaciones *services.Notificaciones
	dashboard      *services.Dashboard
	recordatorios  *services.Recordatorios
	renovacion     *renewal.Runner

	route  string
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	a := &App{
		config: cfg,
		log:    log,
		route:  common.LoginRoute,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.session = session.New(cfg.SessionFile,
		session.WithLogger(log),
		session.WithNavigator(a.navigateTo),
	)

	a.api = api.New(cfg.BaseURL, a.session,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
		api.WithUnauthorizedHandler(a.session.HandleUnauthorized),
	)

	a.auth = services.NewAuth(a.api.Usuarios, a.session)
	a.registro = services.NewRegistroSocio(a.api.Usuarios, a.api.Socios, a.api.Planes)
	a.socios = services.NewSocios(a.api.Socios)
	a.usuarios = services.NewUsuarios(a.api.Usuarios)
	a.membresia = services.NewMembresia(a.api.Membresias)
	a.membresias = services.NewMembresiasList(a.api.Membresias)
	a.planes = services.NewPlanes(a.api.Planes)
	a.pagos = services.NewPagos(a.api.Pagos)
	a.notificaciones = services.NewNotificaciones(a.api.Notificaciones)
	a.dashboard = services.NewDashboard(a.api.Dashboard)
	a.recordatorios = services.NewRecordatorios(a.api.Notificaciones, cfg.RecordatorioRPS)

	a.renovacion = renewal.NewRunner(a.api.Pagos, a.api.Membresias,
		func(ctx context.Context) error {
			// refresh whichever view the renewing session looks at
			if a.session.Rol() == models.RolAdmin {
				return a.membresias.Fetch(ctx)
			}
			if u, ok := a.session.User(); ok {
				return a.membresia.Fetch(ctx, u.ID)
			}
			return nil
		},
		renewal.WithLogger(log),
	)

	// a session restored from disk resumes at the owner's home, not at login
	if a.session.IsAuthenticated() {
		a.route = guard.HomeRoute(a.session.Rol())
	}
	return a
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "client starting", "baseURL", a.config.BaseURL)
	a.Root(ctx)
}

// navigateTo is the router signal. The 401 observer lands here when the
// backend rejects the session mid-use.
func (a *App) navigateTo(route string) {
	if a.route != route {
		a.route = route
		if route == common.LoginRoute {
			fmt.Fprintln(a.out, "La sesión expiró. Inicie sesión nuevamente.")
		}
	}
}

// Route returns the surface the REPL is currently on.
func (a *App) Route() string {
	return a.route
}

// enter evaluates the guard for a role-owned surface. A denied entry prints
// nothing beyond the redirect; the prompt shows where the user landed.
func (a *App) enter(required models.Rol) bool {
	d := guard.Evaluate(required, a.session)
	if !d.Authorized {
		a.navigateTo(d.Redirect)
		return false
	}
	return true
}

func (a *App) statusLine() string {
	if u, ok := a.session.User(); ok {
		return fmt.Sprintf("(%s %s)", u.NombreCompleto(), a.route)
	}
	return ""
}

// tokenWarning reports a short notice when the restored token is close to
// its exp claim; a stale token would bounce on the first call anyway.
func (a *App) tokenWarning(now time.Time) string {
	exp := a.session.TokenExpiresAt()
	if exp.IsZero() || exp.After(now.Add(time.Hour)) {
		return ""
	}
	if exp.Before(now) {
		return "El token de la sesión guardada ya venció."
	}
	return "El token de la sesión vence en menos de una hora."
}
