package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// surface defines the command set the REPL dispatches onto. The real App
// type satisfies this interface; tests can provide a lightweight stub.
type surface interface {
	Route() string
	Login(ctx context.Context) error
	Registro(ctx context.Context) error
	Planes(ctx context.Context) error
	Membresia(ctx context.Context) error
	Renovar(ctx context.Context) error
	RenovarMembresia(ctx context.Context, id string) error
	Notificaciones(ctx context.Context) error
	Leer(id string)
	Perfil(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Socios(ctx context.Context) error
	Usuarios(ctx context.Context) error
	Renovaciones(ctx context.Context) error
	Pagos(ctx context.Context) error
	Recordatorio(ctx context.Context, id string) error
	ActualizarSocio(ctx context.Context, id string) error
	CambiarEstado(ctx context.Context, id, estado string) error
	Eliminar(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Colegio CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 's'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn). Which commands apply
// is decided by the handlers themselves through the route guard; the REPL
// only varies the help text by surface:
//
//	Anonymous:
//	  - login | registro | planes
//	Socio:
//	  - membresia | renovar | notificaciones | leer <id> | perfil | logout
//	Admin:
//	  - dashboard | socios | usuarios | renovaciones | pagos
//	  - renovar <id> | recordatorio <id> | actualizar <id>
//	  - estado <id> <estado> | eliminar <id> | logout
//
// Errors returned by command handlers are ignored here; handlers print their
// own localized messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, s surface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("colegio %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(s.Route())

		case "login":
			_ = s.Login(ctx)

		case "registro":
			_ = s.Registro(ctx)

		case "planes":
			_ = s.Planes(ctx)

		case "membresia":
			_ = s.Membresia(ctx)

		case "renovar":
			// bare renovar is the socio's own membership; with an id it is
			// the admin's per-row action
			if len(args) > 0 {
				_ = s.RenovarMembresia(ctx, args[0])
				continue
			}
			_ = s.Renovar(ctx)

		case "notificaciones":
			_ = s.Notificaciones(ctx)

		case "leer":
			if len(args) == 0 {
				printlnFn("Uso: leer <id>")
				continue
			}
			s.Leer(args[0])

		case "perfil":
			_ = s.Perfil(ctx)

		case "dashboard":
			_ = s.Dashboard(ctx)

		case "socios":
			_ = s.Socios(ctx)

		case "usuarios":
			_ = s.Usuarios(ctx)

		case "renovaciones":
			_ = s.Renovaciones(ctx)

		case "pagos":
			_ = s.Pagos(ctx)

		case "recordatorio":
			if len(args) == 0 {
				printlnFn("Uso: recordatorio <id>")
				continue
			}
			_ = s.Recordatorio(ctx, args[0])

		case "actualizar":
			if len(args) == 0 {
				printlnFn("Uso: actualizar <id>")
				continue
			}
			_ = s.ActualizarSocio(ctx, args[0])

		case "estado":
			if len(args) < 2 {
				printlnFn("Uso: estado <id> <Activo|Inactivo|Pendiente|Expirado>")
				continue
			}
			_ = s.CambiarEstado(ctx, args[0], args[1])

		case "eliminar":
			if len(args) == 0 {
				printlnFn("Uso: eliminar <id>")
				continue
			}
			_ = s.Eliminar(ctx, args[0])

		case "logout":
			_ = s.Logout(ctx)

		case "exit", "quit":
			printlnFn("Hasta luego!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}
	}
}

func printHelp(route string) {
	switch route {
	case common.AdminHomeRoute:
		printlnFn("Comandos: dashboard, socios, usuarios, renovaciones, pagos, renovar <id>, recordatorio <id>, actualizar <id>, estado <id> <estado>, eliminar <id>, logout, exit")
	case common.SocioHomeRoute:
		printlnFn("Comandos: membresia, renovar, notificaciones, leer <id>, perfil, logout, exit")
	default:
		printlnFn("Comandos: login, registro, planes, exit")
	}
}
