package repository

import "github.com/tu-usuario/sears-pos/internal/domain/entity"

// VentaRepository define el puerto de persistencia para Venta y su detalle.
// Create y CreateDetalle se invocan dentro de la transacción de confirmación.
type VentaRepository interface {
	Create(v *entity.Venta) error
	CreateDetalle(d *entity.DetalleVenta) error
	GetByID(id string) (*entity.Venta, error)
	GetDetalles(idVenta string) ([]*entity.DetalleVenta, error)
	List(limit, offset int) ([]*entity.Venta, error)
}
