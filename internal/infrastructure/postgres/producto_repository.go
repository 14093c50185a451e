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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `p.id, p.nombre, p.descripcion, p.precio_costo, p.precio_publico, p.stock,
		p.id_departamento, p.id_proveedor, p.codigo_barras, p.creado_en, p.actualizado_en`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.PrecioCosto, &p.PrecioPublico, &p.Stock,
		&p.IDDepartamento, &p.IDProveedor, &p.CodigoBarras, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, descripcion, precio_costo, precio_publico, stock,
			id_departamento, id_proveedor, codigo_barras, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.PrecioCosto, p.PrecioPublico, p.Stock,
		p.IDDepartamento, p.IDProveedor, p.CodigoBarras, p.CreadoEn, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos p WHERE p.id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List lista productos con paginación y los nombres de departamento y
// proveedor vía LEFT JOIN.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `,
			COALESCE(d.nombre, ''), COALESCE(pr.nombre, '')
		FROM productos p
		LEFT JOIN departamentos d ON d.id = p.id_departamento
		LEFT JOIN proveedores pr ON pr.id = p.id_proveedor
		ORDER BY p.nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.PrecioCosto, &p.PrecioPublico, &p.Stock,
			&p.IDDepartamento, &p.IDProveedor, &p.CodigoBarras, &p.CreadoEn, &p.ActualizadoEn,
			&p.NombreDepartamento, &p.NombreProveedor,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Buscar busca productos por subcadena del nombre (ILIKE) o coincidencia
// exacta de id o código de barras.
func (r *ProductoRepo) Buscar(texto string, limit int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `
		FROM productos p
		WHERE p.nombre ILIKE '%' || $1 || '%'
		   OR p.id::text = $1
		   OR p.codigo_barras = $1
		ORDER BY p.nombre LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, texto, limit)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.PrecioCosto, &p.PrecioPublico, &p.Stock,
			&p.IDDepartamento, &p.IDProveedor, &p.CodigoBarras, &p.CreadoEn, &p.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente. No toca el stock: ese solo lo
// decrementa DescontarStock dentro de la transacción de venta.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, precio_costo = $4, precio_publico = $5,
			id_departamento = $6, id_proveedor = $7, codigo_barras = $8, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.PrecioCosto, p.PrecioPublico,
		p.IDDepartamento, p.IDProveedor, p.CodigoBarras, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEnUso
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// EnUso indica si existen líneas de venta ligadas al producto.
func (r *ProductoRepo) EnUso(id string) (bool, error) {
	var enUso bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM detalle_ventas WHERE id_producto = $1)`, id,
	).Scan(&enUso)
	if err != nil {
		return false, fmt.Errorf("producto en uso: %w", err)
	}
	return enUso, nil
}

// DescontarStock resta cantidad al stock solo si alcanza. El UPDATE
// condicional es la última palabra contra ventas concurrentes: si no afecta
// filas se relee el stock vivo y se reporta StockInsuficienteError.
func (r *ProductoRepo) DescontarStock(id string, cantidad int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock - $2, actualizado_en = now()
		 WHERE id = $1 AND stock >= $2`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	var nombre string
	var disponible int
	err = r.q.QueryRow(context.Background(),
		`SELECT nombre, stock FROM productos WHERE id = $1`, id,
	).Scan(&nombre, &disponible)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("leer stock vivo: %w", err)
	}
	return &domain.StockInsuficienteError{
		ProductoID: id,
		Nombre:     nombre,
		Solicitado: cantidad,
		Disponible: disponible,
	}
}
