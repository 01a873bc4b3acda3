package cli

import (
	"github.com/go-playground/validator/v10"

	"github.com/colegioprofesionales/colegio-cli/internal/client/renewal"
	"github.com/colegioprofesionales/colegio-cli/internal/client/services"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// registroForm mirrors the registration wizard's inputs with the constraints
// enforced before anything is sent to the backend.
type registroForm struct {
	Nombres         string `validate:"required"`
	Apellidos       string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	Profesion       string `validate:"required"`
	Direccion       string `validate:"required"`
	Telefono        string `validate:"required,min=7,max=15"`
	MembresiaPlanID string `validate:"required"`
}

// tarjetaForm is the shape check on collected card fields. The values stay
// in process; only their validity matters.
type tarjetaForm struct {
	Numero     string `validate:"required,numeric,len=16"`
	Expiracion string `validate:"required,len=5"`
	CVV        string `validate:"required,numeric,min=3,max=4"`
	Titular    string `validate:"required"`
}

// registroFieldMessages localizes the first failed constraint per field.
var registroFieldMessages = map[string]string{
	"Nombres":         "Ingrese sus nombres",
	"Apellidos":       "Ingrese sus apellidos",
	"Email":           "Ingrese un email válido",
	"Password":        "La contraseña debe tener al menos 8 caracteres",
	"Profesion":       "Ingrese su profesión",
	"Direccion":       "Ingrese su dirección",
	"Telefono":        "Ingrese un teléfono válido",
	"MembresiaPlanID": "Seleccione un plan de membresía",
}

var tarjetaFieldMessages = map[string]string{
	"Numero":     "El número de tarjeta debe tener 16 dígitos",
	"Expiracion": "Ingrese la expiración en formato MM/AA",
	"CVV":        "El CVV debe tener 3 o 4 dígitos",
	"Titular":    "Ingrese el nombre del titular",
}

func firstMessage(err error, messages map[string]string) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Datos inválidos"
	}
	if msg, ok := messages[errs[0].Field()]; ok {
		return msg
	}
	return "Datos inválidos"
}

// validarRegistro returns the localized message of the first invalid field,
// empty when the form is complete.
func validarRegistro(data services.RegistroSocioData) string {
	form := registroForm{
		Nombres:         data.Nombres,
		Apellidos:       data.Apellidos,
		Email:           data.Email,
		Password:        data.Password,
		Profesion:       data.Profesion,
		Direccion:       data.Direccion,
		Telefono:        data.Telefono,
		MembresiaPlanID: data.MembresiaPlanID,
	}
	if err := validate.Struct(form); err != nil {
		return firstMessage(err, registroFieldMessages)
	}
	return ""
}

// validarTarjeta checks the collected card fields' shape.
func validarTarjeta(t renewal.Tarjeta) string {
	form := tarjetaForm{
		Numero:     t.Numero,
		Expiracion: t.Expiracion,
		CVV:        t.CVV,
		Titular:    t.Titular,
	}
	if err := validate.Struct(form); err != nil {
		return firstMessage(err, tarjetaFieldMessages)
	}
	return ""
}
