package service

import "errors"

// ErrStockInsuficiente rejects a salida larger than the current stock. The
// insumo is left untouched; the caller surfaces the message.
var ErrStockInsuficiente = errors.New("la salida no puede ser mayor al stock actual")

// ValidationError is a user-recoverable input rejection. Operations that
// return it have no partial effect: state is exactly as before the call.
type ValidationError struct {
	Detalle string
}

func (e *ValidationError) Error() string { return e.Detalle }

func newValidationError(detalle string) *ValidationError {
	return &ValidationError{Detalle: detalle}
}

// IsValidation reports whether err is a ValidationError, so handlers can map
// it to 422 without inspecting messages.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
