package dto

import "net/mail"

// ErrorResponse cuerpo de error HTTP. Details lleva la lista de violaciones
// cuando la validación del request rechaza el cuerpo.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// isEmail valida el formato de una dirección de correo.
func isEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
