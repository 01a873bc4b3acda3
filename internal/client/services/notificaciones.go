package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// Notificaciones lists the user's notifications. Marking one as read is a
// local-only mutation until the backend grows a matching endpoint.
type Notificaciones struct {
	status
	api            NotificacionesAPI
	notificaciones []models.Notificacion
}

func NewNotificaciones(api NotificacionesAPI) *Notificaciones {
	return &Notificaciones{api: api}
}

func (n *Notificaciones) Data() []models.Notificacion {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notificaciones
}

func (n *Notificaciones) Fetch(ctx context.Context, usuarioID string) error {
	n.begin()
	defer n.finish()

	data, err := n.api.ListarPorUsuario(ctx, usuarioID)
	if err != nil {
		n.fail("Error al obtener notificaciones")
		return err
	}
	n.mu.Lock()
	n.notificaciones = data
	n.mu.Unlock()
	return nil
}

// MarcarLeida flips the local read flag.
func (n *Notificaciones) MarcarLeida(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.notificaciones {
		if n.notificaciones[i].ID == id {
			n.notificaciones[i].Leida = true
		}
	}
}

// NoLeidas counts unread notifications.
func (n *Notificaciones) NoLeidas() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, notif := range n.notificaciones {
		if !notif.Leida {
			count++
		}
	}
	return count
}
