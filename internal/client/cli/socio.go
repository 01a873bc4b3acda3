package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/client/renewal"
)

// Membresia shows the socio's own membership: plan, dates, estado, and the
// renewal action when the expiry window opens.
func (a *App) Membresia(ctx context.Context) error {
	if !a.enter(models.RolSocio) {
		return nil
	}
	u, _ := a.session.User()

	if err := a.membresia.Fetch(ctx, u.ID); err != nil {
		fmt.Fprintln(a.out, a.membresia.Err())
		return err
	}
	m := a.membresia.Data()
	if m == nil {
		fmt.Fprintln(a.out, "No tiene una membresía registrada.")
		return nil
	}

	fmt.Fprintf(a.out, "Plan:    %s\nEstado:  %s\nInicio:  %s\nVence:   %s\n",
		m.PlanNombre, m.Estado, m.FechaInicio, m.FechaFin)

	dias, err := models.DiasRestantes(m.FechaFin, time.Now())
	if err != nil {
		fmt.Fprintln(a.out, "La fecha de vencimiento no es válida.")
		return nil
	}
	switch {
	case dias < 0:
		fmt.Fprintf(a.out, "Su membresía venció hace %d días.\n", -dias)
	case dias == 0:
		fmt.Fprintln(a.out, "Su membresía vence hoy.")
	default:
		fmt.Fprintf(a.out, "Días restantes: %d\n", dias)
	}
	if models.EsRenovable(dias, a.config.VentanaRenovacionDias) {
		fmt.Fprintf(a.out, "Acción disponible: %s (comando 'renovar')\n", models.AccionLabel(dias))
	}
	return nil
}

// Renovar runs the renewal wizard for the socio's own membership.
func (a *App) Renovar(ctx context.Context) error {
	if !a.enter(models.RolSocio) {
		return nil
	}
	u, _ := a.session.User()

	if a.membresia.Data() == nil {
		if err := a.membresia.Fetch(ctx, u.ID); err != nil {
			fmt.Fprintln(a.out, a.membresia.Err())
			return err
		}
	}
	m := a.membresia.Data()
	if m == nil {
		fmt.Fprintln(a.out, "No tiene una membresía registrada.")
		return nil
	}

	return a.runRenovacion(ctx, models.MembresiaResponse{
		ID:            m.ID,
		PlanNombre:    m.PlanNombre,
		UsuarioID:     u.ID,
		UsuarioNombre: u.NombreCompleto(),
		FechaInicio:   m.FechaInicio,
		FechaFin:      m.FechaFin,
		Estado:        m.Estado,
		Monto:         m.Monto,
	})
}

// runRenovacion drives the workflow runner for one membership row: confirm
// the amount, collect the payment method and card fields, and submit. Shared
// by the socio's renovar command and the admin's per-row renovar. The runner
// enforces the payment-before-renewal protocol; the wizard only feeds it.
func (a *App) runRenovacion(ctx context.Context, row models.MembresiaResponse) error {
	// plan prices resolve the renewal amount; ignore a failed fetch and let
	// the stored amount serve as fallback
	_ = a.planes.Fetch(ctx)

	state := a.renovacion.Dispatch(renewal.Start{
		Membresia: row,
		Planes:    a.planes.Data(),
		Ventana:   a.config.VentanaRenovacionDias,
		Now:       time.Now(),
	})
	if state.Tag != renewal.TagConfirm {
		fmt.Fprintln(a.out, "La membresía aún no está en el período de renovación.")
		return nil
	}

	ok, err := GetConfirmation(a.reader,
		fmt.Sprintf("Renovar el plan %s de %s por $%.2f?", row.PlanNombre, row.UsuarioNombre, state.Monto), a.out)
	if err != nil || !ok {
		a.renovacion.Dispatch(renewal.Cancel{})
		return err
	}
	a.renovacion.Dispatch(renewal.Confirm{})

	for {
		metodo, tarjeta, err := a.collectPago()
		if err != nil {
			a.renovacion.Dispatch(renewal.Cancel{})
			return err
		}
		if metodo == "" {
			a.renovacion.Dispatch(renewal.Cancel{})
			fmt.Fprintln(a.out, "Renovación cancelada.")
			return nil
		}

		state = a.renovacion.Submit(ctx, metodo, tarjeta)
		switch state.Tag {
		case renewal.TagSuccess:
			fmt.Fprintln(a.out, "Renovación completada. Gracias por su pago.")
			a.renovacion.Dispatch(renewal.Acknowledge{})
			return nil

		case renewal.TagFailed:
			fmt.Fprintln(a.out, state.Mensaje)
			if state.Kind != renewal.FailPago {
				a.renovacion.Dispatch(renewal.Acknowledge{})
				return nil
			}
			retry, err := GetConfirmation(a.reader, "¿Intentar nuevamente?", a.out)
			if err != nil || !retry {
				a.renovacion.Reset()
				return err
			}
			a.renovacion.Dispatch(renewal.Retry{})

		case renewal.TagCollect:
			// rejected input, message already set
			fmt.Fprintln(a.out, state.Mensaje)
		}
	}
}

// collectPago reads the payment method and, for tarjeta, the card fields.
// Card input that fails the shape check is re-collected; nothing invalid is
// ever handed to the runner. An empty method means the user backed out.
func (a *App) collectPago() (models.MetodoPago, renewal.Tarjeta, error) {
	answer, err := getSimpleText(a.reader, "Método de pago (tarjeta/transferencia/efectivo, vacío para cancelar)", a.out)
	if err != nil || answer == "" {
		return "", renewal.Tarjeta{}, err
	}
	metodo := models.MetodoPago(answer)
	if metodo != models.MetodoTarjeta {
		return metodo, renewal.Tarjeta{}, nil
	}

	for {
		var t renewal.Tarjeta
		fields := []struct {
			prompt string
			dst    *string
		}{
			{"Número de tarjeta (16 dígitos, vacío para cancelar)", &t.Numero},
			{"Expiración (MM/AA)", &t.Expiracion},
			{"CVV", &t.CVV},
			{"Titular", &t.Titular},
		}
		for _, f := range fields {
			v, err := getSimpleText(a.reader, f.prompt, a.out)
			if err != nil {
				return "", renewal.Tarjeta{}, err
			}
			if f.dst == &t.Numero && v == "" {
				return "", renewal.Tarjeta{}, nil
			}
			*f.dst = v
		}
		if msg := validarTarjeta(t); msg != "" {
			fmt.Fprintln(a.out, msg)
			continue
		}
		return metodo, t, nil
	}
}

// Notificaciones lists the socio's notifications, marking unread ones.
func (a *App) Notificaciones(ctx context.Context) error {
	if !a.enter(models.RolSocio) {
		return nil
	}
	u, _ := a.session.User()

	if err := a.notificaciones.Fetch(ctx, u.ID); err != nil {
		fmt.Fprintln(a.out, a.notificaciones.Err())
		return err
	}
	list := a.notificaciones.Data()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No tiene notificaciones.")
		return nil
	}
	fmt.Fprintf(a.out, "Notificaciones (%d sin leer):\n", a.notificaciones.NoLeidas())
	for _, n := range list {
		marker := " "
		if !n.Leida {
			marker = "*"
		}
		fmt.Fprintf(a.out, " %s %-12s %s: %s\n", marker, n.ID, n.Titulo, n.Mensaje)
	}
	return nil
}

// Leer marks one notification as read.
func (a *App) Leer(id string) {
	a.notificaciones.MarcarLeida(id)
}
