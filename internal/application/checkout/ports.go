package checkout

import (
	"context"

	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que cabecera, detalle y descuentos
// de stock de una venta se confirmen todos o ninguno.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
	) error) error
}
