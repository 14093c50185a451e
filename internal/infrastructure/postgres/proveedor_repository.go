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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre, contacto, telefono, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Contacto, p.Telefono, p.CreadoEn, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, contacto, telefono, creado_en, actualizado_en
		FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List lista proveedores con paginación, orden alfabético.
func (r *ProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, contacto, telefono, creado_en, actualizado_en
		FROM proveedores ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Contacto, &p.Telefono, &p.CreadoEn, &p.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor existente.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre = $2, contacto = $3, telefono = $4, actualizado_en = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Contacto, p.Telefono, p.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEnUso
		}
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

// EnUso indica si existen productos ligados al proveedor.
func (r *ProveedorRepo) EnUso(id string) (bool, error) {
	var enUso bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM productos WHERE id_proveedor = $1)`, id,
	).Scan(&enUso)
	if err != nil {
		return false, fmt.Errorf("proveedor en uso: %w", err)
	}
	return enUso, nil
}
