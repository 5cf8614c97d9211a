package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de structs (thread-safe).
var validate = validator.New()

// validateBody valida un DTO según sus tags `validate` y devuelve un mensaje
// legible con los campos rechazados.
func validateBody(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("champs invalides: %s", strings.Join(fields, ", "))
}
