package services

import (
	"context"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
)

// ---- fakes ----

type fakeUsuariosAPI struct {
	LoginRet *models.LoginResponse
	LoginErr error

	RegistrarRet *models.Usuario
	RegistrarErr error

	ListarRet []models.Usuario
	ListarErr error

	ObtenerRet *models.Usuario
	ObtenerErr error

	ActualizarRet *models.Usuario
	ActualizarErr error

	LastLogin      models.LoginRequest
	LastRegistrar  models.RegisterRequest
	RegistrarCalls int
}

func (f *fakeUsuariosAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeUsuariosAPI) Registrar(ctx context.Context, req models.RegisterRequest) (*models.Usuario, error) {
	f.LastRegistrar = req
	f.RegistrarCalls++
	return f.RegistrarRet, f.RegistrarErr
}

func (f *fakeUsuariosAPI) Listar(ctx context.Context) ([]models.Usuario, error) {
	return f.ListarRet, f.ListarErr
}

func (f *fakeUsuariosAPI) ObtenerPorID(ctx context.Context, id string) (*models.Usuario, error) {
	return f.ObtenerRet, f.ObtenerErr
}

func (f *fakeUsuariosAPI) Actualizar(ctx context.Context, id string, req models.UpdateUsuarioRequest) (*models.Usuario, error) {
	return f.ActualizarRet, f.ActualizarErr
}

type fakeSociosAPI struct {
	RegistrarRet *models.Socio
	RegistrarErr error

	ListarRet   [][]models.Socio // consumed one per call so refetch tests can differ
	ListarErr   error
	ListarCalls int

	ActualizarRet *models.Socio
	ActualizarErr error

	ActualizarEstadoErr error
	EliminarErr         error

	LastRegistrar  models.RegistrarSocioRequest
	LastEstadoID   string
	LastEstado     models.EstadoSocio
	RegistrarCalls int
}

func (f *fakeSociosAPI) Registrar(ctx context.Context, req models.RegistrarSocioRequest) (*models.Socio, error) {
	f.LastRegistrar = req
	f.RegistrarCalls++
	return f.RegistrarRet, f.RegistrarErr
}

func (f *fakeSociosAPI) Listar(ctx context.Context) ([]models.Socio, error) {
	f.ListarCalls++
	if f.ListarErr != nil {
		return nil, f.ListarErr
	}
	if len(f.ListarRet) == 0 {
		return nil, nil
	}
	ret := f.ListarRet[0]
	if len(f.ListarRet) > 1 {
		f.ListarRet = f.ListarRet[1:]
	}
	return ret, nil
}

func (f *fakeSociosAPI) ObtenerPorID(ctx context.Context, id string) (*models.Socio, error) {
	return f.RegistrarRet, f.RegistrarErr
}

func (f *fakeSociosAPI) Actualizar(ctx context.Context, req models.ActualizarSocioRequest) (*models.Socio, error) {
	return f.ActualizarRet, f.ActualizarErr
}

func (f *fakeSociosAPI) ActualizarEstado(ctx context.Context, id string, estado models.EstadoSocio) error {
	f.LastEstadoID = id
	f.LastEstado = estado
	return f.ActualizarEstadoErr
}

func (f *fakeSociosAPI) Eliminar(ctx context.Context, id string) error {
	return f.EliminarErr
}

type fakePlanesAPI struct {
	ListarRet []models.Plan
	ListarErr error
}

func (f *fakePlanesAPI) Listar(ctx context.Context) ([]models.Plan, error) {
	return f.ListarRet, f.ListarErr
}

type fakeMembresiasAPI struct {
	ListarRet []models.MembresiaResponse
	ListarErr error

	ObtenerRet *models.Membresia
	ObtenerErr error

	ListarCalls int
}

func (f *fakeMembresiasAPI) Listar(ctx context.Context) ([]models.MembresiaResponse, error) {
	f.ListarCalls++
	return f.ListarRet, f.ListarErr
}

func (f *fakeMembresiasAPI) ObtenerPorUsuario(ctx context.Context, usuarioID string) (*models.Membresia, error) {
	return f.ObtenerRet, f.ObtenerErr
}

type fakePagosAPI struct {
	ListarRet []models.PagoResponse
	ListarErr error

	RegistrarRet *models.PagoResponse
	RegistrarErr error

	LastRegistrar  models.PagoRequest
	RegistrarCalls int
}

func (f *fakePagosAPI) Listar(ctx context.Context) ([]models.PagoResponse, error) {
	return f.ListarRet, f.ListarErr
}

func (f *fakePagosAPI) Registrar(ctx context.Context, req models.PagoRequest) (*models.PagoResponse, error) {
	f.LastRegistrar = req
	f.RegistrarCalls++
	return f.RegistrarRet, f.RegistrarErr
}

type fakeNotificacionesAPI struct {
	ListarRet []models.Notificacion
	ListarErr error

	RecordatorioErr   error
	LastRecordatorio  models.RecordatorioRequest
	RecordatorioCalls int
}

func (f *fakeNotificacionesAPI) ListarPorUsuario(ctx context.Context, usuarioID string) ([]models.Notificacion, error) {
	return f.ListarRet, f.ListarErr
}

func (f *fakeNotificacionesAPI) EnviarRecordatorio(ctx context.Context, req models.RecordatorioRequest) error {
	f.LastRecordatorio = req
	f.RecordatorioCalls++
	return f.RecordatorioErr
}

type fakeSession struct {
	SetErr error

	user     *models.Usuario
	token    string
	SetCalls int
}

func (f *fakeSession) Set(user models.Usuario, token string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	u := user
	f.user = &u
	f.token = token
	f.SetCalls++
	return nil
}

func (f *fakeSession) Clear() {
	f.user = nil
	f.token = ""
}
