package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/client/services"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// Dashboard shows the admin statistics summary.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	if err := a.dashboard.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, a.dashboard.Err())
		return err
	}
	s := a.dashboard.Data()
	fmt.Fprintf(a.out, "Socios:                  %d (%d activos)\n", s.TotalSocios, s.SociosActivos)
	fmt.Fprintf(a.out, "Renovaciones pendientes: %d\n", s.RenovacionesPendientes)
	fmt.Fprintf(a.out, "Pagos registrados:       %d\n", s.PagosTotales)
	fmt.Fprintf(a.out, "Ingresos totales:        $%.2f\n", s.IngresosTotales)
	return nil
}

// Socios lists the member table.
func (a *App) Socios(ctx context.Context) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	if err := a.socios.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, a.socios.Err())
		return err
	}
	fmt.Fprintf(a.out, "%-12s %-25s %-20s %-10s\n", "ID", "Nombre", "Profesión", "Estado")
	for _, s := range a.socios.Data() {
		fmt.Fprintf(a.out, "%-12s %-25s %-20s %-10s\n",
			s.ID, s.Nombres+" "+s.Apellidos, s.Profesion, s.EstadoSocio)
	}
	return nil
}

// Usuarios lists every account.
func (a *App) Usuarios(ctx context.Context) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	if err := a.usuarios.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, a.usuarios.Err())
		return err
	}
	fmt.Fprintf(a.out, "%-12s %-25s %-25s %-8s\n", "ID", "Nombre", "Email", "Rol")
	for _, u := range a.usuarios.Data() {
		fmt.Fprintf(a.out, "%-12s %-25s %-25s %-8s\n", u.ID, u.NombreCompleto(), u.Email, u.Rol)
	}
	return nil
}

// Renovaciones shows the upcoming-renewal table: every membership with its
// days remaining, urgency badge, and the per-row reminder availability.
func (a *App) Renovaciones(ctx context.Context) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	if err := a.membresias.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, a.membresias.Err())
		return err
	}

	now := time.Now()
	fmt.Fprintf(a.out, "%-12s %-25s %-10s %-12s %-8s %-10s %s\n",
		"ID", "Socio", "Plan", "Vence", "Días", "Urgencia", "Acción")
	for _, m := range a.membresias.Data() {
		dias, err := models.DiasRestantes(m.FechaFin, now)
		diasCol := "?"
		urgencia := models.UrgenciaVencido
		accion := "-"
		if err == nil {
			diasCol = fmt.Sprintf("%d", dias)
			urgencia = models.ClasificarUrgencia(m.Estado, dias)
			if models.EsRenovable(dias, a.config.VentanaRenovacionDias) {
				accion = models.AccionLabel(dias)
			}
		}
		row := fmt.Sprintf("%-12s %-25s %-10s %-12s %-8s %-10s %s",
			m.ID, m.UsuarioNombre, m.PlanNombre, m.FechaFin, diasCol, urgencia, accion)
		if a.recordatorios.SendingID() == m.ID {
			row += "  [enviando recordatorio...]"
		}
		fmt.Fprintln(a.out, row)
	}
	if notice := a.recordatorios.Notice(); notice != "" {
		fmt.Fprintln(a.out, notice)
	}
	return nil
}

// RenovarMembresia drives the renewal workflow for one row of the
// renovaciones table, the admin-side counterpart of the socio's renovar.
// The runner applies the same eligibility gate and payment-first protocol.
func (a *App) RenovarMembresia(ctx context.Context, id string) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	if len(a.membresias.Data()) == 0 {
		if err := a.membresias.Fetch(ctx); err != nil {
			fmt.Fprintln(a.out, a.membresias.Err())
			return err
		}
	}
	var row *models.MembresiaResponse
	for _, m := range a.membresias.Data() {
		if m.ID == id {
			row = &m
			break
		}
	}
	if row == nil {
		fmt.Fprintln(a.out, "Membresía no encontrada; ejecute 'renovaciones' primero.")
		return nil
	}
	return a.runRenovacion(ctx, *row)
}

// Recordatorio dispatches one renewal reminder for the given membership row.
// Fire-and-forget: failures leave a transient notice and nothing retries.
func (a *App) Recordatorio(ctx context.Context, id string) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	var row *models.MembresiaResponse
	for _, m := range a.membresias.Data() {
		if m.ID == id {
			row = &m
			break
		}
	}
	if row == nil {
		fmt.Fprintln(a.out, "Membresía no encontrada; ejecute 'renovaciones' primero.")
		return nil
	}
	if a.recordatorios.SendingID() != "" {
		fmt.Fprintln(a.out, "Ya hay un recordatorio en camino.")
		return nil
	}

	err := a.recordatorios.Enviar(ctx, *row)
	fmt.Fprintln(a.out, a.recordatorios.Notice())
	time.AfterFunc(services.NoticeDelay, a.recordatorios.ClearNotice)
	return err
}

// Pagos lists the recorded payments.
func (a *App) Pagos(ctx context.Context) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	if err := a.pagos.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, a.pagos.Err())
		return err
	}
	fmt.Fprintf(a.out, "%-12s %-25s %-10s %-12s %s\n", "ID", "Socio", "Monto", "Estado", "Fecha")
	for _, p := range a.pagos.Data() {
		fmt.Fprintf(a.out, "%-12s %-25s $%-9.2f %-12s %s\n",
			p.ID, p.UsuarioNombre, p.Monto, p.Estado, p.FechaPago)
	}
	return nil
}

// ActualizarSocio edits a member's record: cédula, profesión, estado. Empty
// answers keep the current value where possible; estado must be one of the
// known labels.
func (a *App) ActualizarSocio(ctx context.Context, id string) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	var actual *models.Socio
	for _, s := range a.socios.Data() {
		if s.ID == id {
			actual = &s
			break
		}
	}
	if actual == nil {
		fmt.Fprintln(a.out, "Socio no encontrado; ejecute 'socios' primero.")
		return nil
	}

	req := models.ActualizarSocioRequest{
		ID:              id,
		CedulaIdentidad: actual.CedulaIdentidad,
		Profesion:       actual.Profesion,
		EstadoSocio:     actual.EstadoSocio,
	}
	cedula, err := getSimpleText(a.reader, "Cédula (vacío para mantener)", a.out)
	if err != nil {
		return err
	}
	if cedula != "" {
		req.CedulaIdentidad = cedula
	}
	profesion, err := getSimpleText(a.reader, "Profesión (vacío para mantener)", a.out)
	if err != nil {
		return err
	}
	if profesion != "" {
		req.Profesion = profesion
	}
	estado, err := getSimpleText(a.reader, "Estado (vacío para mantener)", a.out)
	if err != nil {
		return err
	}
	if estado != "" {
		nuevo := models.EstadoSocio(estado)
		switch nuevo {
		case models.SocioActivo, models.SocioInactivo, models.SocioPendiente, models.SocioExpirado:
			req.EstadoSocio = nuevo
		default:
			fmt.Fprintln(a.out, "Estado inválido. Use Activo, Inactivo, Pendiente o Expirado.")
			return common.ErrValidation
		}
	}

	if err := a.socios.Actualizar(ctx, req); err != nil {
		fmt.Fprintln(a.out, a.socios.Err())
		return err
	}
	fmt.Fprintln(a.out, "Socio actualizado.")
	return nil
}

// CambiarEstado forwards an explicit member estado update; the server
// recomputes everything derived, so the list is refetched afterwards.
func (a *App) CambiarEstado(ctx context.Context, id, estado string) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	nuevo := models.EstadoSocio(estado)
	switch nuevo {
	case models.SocioActivo, models.SocioInactivo, models.SocioPendiente, models.SocioExpirado:
	default:
		fmt.Fprintln(a.out, "Estado inválido. Use Activo, Inactivo, Pendiente o Expirado.")
		return common.ErrValidation
	}
	if err := a.socios.ActualizarEstado(ctx, id, nuevo); err != nil {
		fmt.Fprintln(a.out, a.socios.Err())
		return err
	}
	fmt.Fprintln(a.out, "Estado actualizado.")
	return nil
}

// Eliminar removes a member after an explicit confirmation.
func (a *App) Eliminar(ctx context.Context, id string) error {
	if !a.enter(models.RolAdmin) {
		return nil
	}
	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Eliminar el socio %s?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.socios.Eliminar(ctx, id); err != nil {
		fmt.Fprintln(a.out, a.socios.Err())
		return err
	}
	fmt.Fprintln(a.out, "Socio eliminado.")
	return nil
}
