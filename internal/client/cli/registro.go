package cli

import (
	"context"
	"fmt"

	"github.com/colegioprofesionales/colegio-cli/internal/client/services"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
)

// Registro runs the public member-registration wizard: show the available
// plans, collect the account and member fields, validate them locally, then
// run the two-step registration. The user stays on the login surface; the
// new account still has to sign in.
func (a *App) Registro(ctx context.Context) error {
	if err := a.registro.FetchPlanes(ctx); err != nil {
		fmt.Fprintln(a.out, a.registro.Err())
		return err
	}
	planes := a.registro.Planes()
	if len(planes) == 0 {
		fmt.Fprintln(a.out, "No hay planes de membresía disponibles.")
		return nil
	}

	fmt.Fprintln(a.out, "Planes disponibles:")
	for _, p := range planes {
		fmt.Fprintf(a.out, "  %-12s %-10s $%.2f / %d meses\n", p.ID, p.Nombre, p.Precio, p.DuracionMeses)
	}

	data, err := a.collectRegistro()
	if err != nil {
		return err
	}
	if msg := validarRegistro(data); msg != "" {
		fmt.Fprintln(a.out, msg)
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	}

	if _, err := a.registro.Registrar(ctx, data); err != nil {
		fmt.Fprintln(a.out, a.registro.Err())
		return err
	}

	fmt.Fprintln(a.out, "Registro completado. Inicie sesión con su nueva cuenta.")
	return nil
}

func (a *App) collectRegistro() (services.RegistroSocioData, error) {
	var data services.RegistroSocioData
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Nombres", &data.Nombres},
		{"Apellidos", &data.Apellidos},
		{"Email", &data.Email},
		{"Profesión", &data.Profesion},
		{"Dirección", &data.Direccion},
		{"Teléfono", &data.Telefono},
		{"ID del plan elegido", &data.MembresiaPlanID},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return data, err
		}
		*f.dst = v
	}
	password, err := getPassword(a.out, "Contraseña")
	if err != nil {
		return data, err
	}
	data.Password = password
	return data, nil
}

// Planes lists the membership plans; reachable without a session.
func (a *App) Planes(ctx context.Context) error {
	if err := a.planes.Fetch(ctx); err != nil {
		fmt.Fprintln(a.out, a.planes.Err())
		return err
	}
	for _, p := range a.planes.Data() {
		fmt.Fprintf(a.out, "  %-10s $%.2f / %d meses\n", p.Nombre, p.Precio, p.DuracionMeses)
	}
	return nil
}
