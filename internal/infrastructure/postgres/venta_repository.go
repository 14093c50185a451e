package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
// Create y CreateDetalle corren dentro de la transacción de confirmación.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de una venta. El folio tiene constraint único:
// un choque retorna ErrDuplicate para que el motor reintente con otro folio.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, folio, id_cliente, id_empleado, fecha, subtotal, iva, total, estado, metodo_pago, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Folio, v.IDCliente, v.IDEmpleado, v.Fecha,
		v.Subtotal, v.IVA, v.Total, v.Estado, v.MetodoPago, v.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea del detalle de la venta.
func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalle_ventas (id_venta, id_producto, cantidad, precio_unitario, importe)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		d.IDVenta, d.IDProducto, d.Cantidad, d.PrecioUnitario, d.Importe,
	)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta con los nombres de cliente y empleado.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT v.id, v.folio, v.id_cliente, v.id_empleado, v.fecha, v.subtotal, v.iva, v.total,
			v.estado, v.metodo_pago, v.creado_en, COALESCE(c.nombre, ''), COALESCE(e.nombre, '')
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.id_cliente
		LEFT JOIN empleados e ON e.id = v.id_empleado
		WHERE v.id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Folio, &v.IDCliente, &v.IDEmpleado, &v.Fecha, &v.Subtotal, &v.IVA, &v.Total,
		&v.Estado, &v.MetodoPago, &v.CreadoEn, &v.NombreCliente, &v.NombreEmpleado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// GetDetalles obtiene las líneas de una venta con el nombre del producto.
func (r *VentaRepo) GetDetalles(idVenta string) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT dv.id_venta, dv.id_producto, dv.cantidad, dv.precio_unitario, dv.importe,
			COALESCE(p.nombre, '')
		FROM detalle_ventas dv
		LEFT JOIN productos p ON p.id = dv.id_producto
		WHERE dv.id_venta = $1`
	rows, err := r.q.Query(context.Background(), query, idVenta)
	if err != nil {
		return nil, fmt.Errorf("get detalles venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.IDVenta, &d.IDProducto, &d.Cantidad, &d.PrecioUnitario, &d.Importe, &d.NombreProducto); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista ventas con paginación, más recientes primero.
func (r *VentaRepo) List(limit, offset int) ([]*entity.Venta, error) {
	query := `
		SELECT v.id, v.folio, v.id_cliente, v.id_empleado, v.fecha, v.subtotal, v.iva, v.total,
			v.estado, v.metodo_pago, v.creado_en, COALESCE(c.nombre, ''), COALESCE(e.nombre, '')
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.id_cliente
		LEFT JOIN empleados e ON e.id = v.id_empleado
		ORDER BY v.fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.Folio, &v.IDCliente, &v.IDEmpleado, &v.Fecha, &v.Subtotal, &v.IVA, &v.Total,
			&v.Estado, &v.MetodoPago, &v.CreadoEn, &v.NombreCliente, &v.NombreEmpleado,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
