package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNegocioNoEncontrado    = errors.New("negocio not found")
	ErrDirectorioNoEncontrado = errors.New("directorio not found")
	ErrEntradaInvalida        = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrAlmacenamiento         = errors.New("storage failure")
	ErrTemporal               = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
