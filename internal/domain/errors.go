package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrEnUso                 = errors.New("el registro tiene dependencias y no puede eliminarse")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrCarritoVacio          = errors.New("el carrito está vacío")
	ErrConfirmacionRequerida = errors.New("la operación requiere confirmación explícita")
	ErrInsufficientStock     = errors.New("stock insuficiente")
)

// StockInsuficienteError identifica la primera línea del carrito cuya cantidad
// supera el stock disponible. Unwrap devuelve ErrInsufficientStock para que
// errors.Is siga funcionando en handlers y tests.
type StockInsuficienteError struct {
	ProductoID string
	Nombre     string
	Solicitado int
	Disponible int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %q: solicitado %d, disponible %d",
		e.Nombre, e.Solicitado, e.Disponible)
}

func (e *StockInsuficienteError) Unwrap() error { return ErrInsufficientStock }
