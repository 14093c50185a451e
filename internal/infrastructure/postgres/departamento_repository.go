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

var _ repository.DepartamentoRepository = (*DepartamentoRepo)(nil)

// DepartamentoRepo implementación del puerto DepartamentoRepository sobre PostgreSQL.
type DepartamentoRepo struct {
	q Querier
}

// NewDepartamentoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDepartamentoRepository(q Querier) *DepartamentoRepo {
	return &DepartamentoRepo{q: q}
}

// Create persiste un nuevo departamento.
func (r *DepartamentoRepo) Create(d *entity.Departamento) error {
	query := `
		INSERT INTO departamentos (id, nombre, ubicacion, encargado, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Nombre, d.Ubicacion, d.Encargado, d.CreadoEn, d.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert departamento: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por ID.
func (r *DepartamentoRepo) GetByID(id string) (*entity.Departamento, error) {
	query := `
		SELECT id, nombre, ubicacion, encargado, creado_en, actualizado_en
		FROM departamentos WHERE id = $1`
	var d entity.Departamento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Nombre, &d.Ubicacion, &d.Encargado, &d.CreadoEn, &d.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get departamento: %w", err)
	}
	return &d, nil
}

// List lista departamentos con paginación, orden alfabético.
func (r *DepartamentoRepo) List(limit, offset int) ([]*entity.Departamento, error) {
	query := `
		SELECT id, nombre, ubicacion, encargado, creado_en, actualizado_en
		FROM departamentos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Departamento
	for rows.Next() {
		var d entity.Departamento
		if err := rows.Scan(&d.ID, &d.Nombre, &d.Ubicacion, &d.Encargado, &d.CreadoEn, &d.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un departamento existente.
func (r *DepartamentoRepo) Update(d *entity.Departamento) error {
	query := `
		UPDATE departamentos SET nombre = $2, ubicacion = $3, encargado = $4, actualizado_en = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Nombre, d.Ubicacion, d.Encargado, d.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update departamento: %w", err)
	}
	return nil
}

// Delete elimina un departamento por ID.
func (r *DepartamentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM departamentos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEnUso
		}
		return fmt.Errorf("delete departamento: %w", err)
	}
	return nil
}

// EnUso indica si existen productos o empleados ligados al departamento.
func (r *DepartamentoRepo) EnUso(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM productos WHERE id_departamento = $1)
		    OR EXISTS (SELECT 1 FROM empleados WHERE id_departamento = $1)`
	var enUso bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&enUso); err != nil {
		return false, fmt.Errorf("departamento en uso: %w", err)
	}
	return enUso, nil
}
