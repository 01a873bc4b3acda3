package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// NoticeDelay is how long transient success notices stay visible before the
// surface clears them. Errors are not subject to it; they persist until the
// next action supersedes them.
const NoticeDelay = 4 * time.Second

// Recordatorios dispatches per-row renewal reminders on the admin table.
// Fire-and-forget: one send in flight is tracked by id so only that row is
// disabled, success and failure both leave a transient notice, and nothing
// retries automatically. Dispatches pass through a rate limiter so a
// click-happy admin cannot burst the notification backend.
type Recordatorios struct {
	api     NotificacionesAPI
	limiter *rate.Limiter

	mu        sync.Mutex
	sendingID string
	notice    string
}

func NewRecordatorios(api NotificacionesAPI, rps float64) *Recordatorios {
	return &Recordatorios{api: api, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// SendingID returns the id of the membership whose reminder is in flight,
// empty when idle. The surface disables exactly that row.
func (r *Recordatorios) SendingID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sendingID
}

// Notice returns the transient status message of the last dispatch.
func (r *Recordatorios) Notice() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notice
}

// ClearNotice removes the transient message; surfaces call it after
// NoticeDelay.
func (r *Recordatorios) ClearNotice() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notice = ""
}

// Enviar dispatches one reminder for the given membership row.
func (r *Recordatorios) Enviar(ctx context.Context, m models.MembresiaResponse) error {
	r.mu.Lock()
	r.sendingID = m.ID
	r.notice = ""
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.sendingID = ""
		r.mu.Unlock()
	}()

	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	err := r.api.EnviarRecordatorio(ctx, models.RecordatorioRequest{
		MembresiaID: m.ID,
		UsuarioID:   m.UsuarioID,
	})

	r.mu.Lock()
	if err != nil {
		r.notice = "Error al enviar el recordatorio. Intente nuevamente."
	} else {
		r.notice = fmt.Sprintf("Recordatorio enviado a %s", m.UsuarioNombre)
	}
	r.mu.Unlock()
	return err
}
