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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste una cuenta de acceso. Email y empleado son únicos.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, empleado_id, email, password_hash, activo, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.EmpleadoID, u.Email, u.PasswordHash, u.Activo, u.CreadoEn, u.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.get(`WHERE id = $1`, id)
}

// FindByEmail obtiene una cuenta por email (para login).
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.get(`WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(where string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, empleado_id, email, password_hash, activo, creado_en, actualizado_en
		FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.EmpleadoID, &u.Email, &u.PasswordHash, &u.Activo, &u.CreadoEn, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
