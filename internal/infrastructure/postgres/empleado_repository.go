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

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

// EmpleadoRepo implementación del puerto EmpleadoRepository sobre PostgreSQL.
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmpleadoRepo) Create(e *entity.Empleado) error {
	query := `
		INSERT INTO empleados (id, nombre, domicilio, puesto, id_departamento, nivel_acceso, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Nombre, e.Domicilio, e.Puesto, e.IDDepartamento, e.NivelAcceso, e.CreadoEn, e.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	query := `
		SELECT id, nombre, domicilio, puesto, id_departamento, nivel_acceso, creado_en, actualizado_en
		FROM empleados WHERE id = $1`
	var e entity.Empleado
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.Domicilio, &e.Puesto, &e.IDDepartamento, &e.NivelAcceso, &e.CreadoEn, &e.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return &e, nil
}

// List lista empleados con paginación y el nombre de su departamento.
func (r *EmpleadoRepo) List(limit, offset int) ([]*entity.Empleado, error) {
	query := `
		SELECT e.id, e.nombre, e.domicilio, e.puesto, e.id_departamento, e.nivel_acceso,
			e.creado_en, e.actualizado_en, COALESCE(d.nombre, '')
		FROM empleados e
		LEFT JOIN departamentos d ON d.id = e.id_departamento
		ORDER BY e.nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empleado
	for rows.Next() {
		var e entity.Empleado
		if err := rows.Scan(
			&e.ID, &e.Nombre, &e.Domicilio, &e.Puesto, &e.IDDepartamento, &e.NivelAcceso,
			&e.CreadoEn, &e.ActualizadoEn, &e.NombreDepartamento,
		); err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado existente.
func (r *EmpleadoRepo) Update(e *entity.Empleado) error {
	query := `
		UPDATE empleados SET nombre = $2, domicilio = $3, puesto = $4, id_departamento = $5,
			nivel_acceso = $6, actualizado_en = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Nombre, e.Domicilio, e.Puesto, e.IDDepartamento, e.NivelAcceso, e.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmpleadoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM empleados WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEnUso
		}
		return fmt.Errorf("delete empleado: %w", err)
	}
	return nil
}

// EnUso indica si existen ventas registradas por el empleado.
func (r *EmpleadoRepo) EnUso(id string) (bool, error) {
	var enUso bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM ventas WHERE id_empleado = $1)`, id,
	).Scan(&enUso)
	if err != nil {
		return false, fmt.Errorf("empleado en uso: %w", err)
	}
	return enUso, nil
}
