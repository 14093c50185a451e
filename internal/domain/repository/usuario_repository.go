package repository

import "github.com/tu-usuario/sears-pos/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para cuentas de acceso.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
