package repository

import "github.com/tu-usuario/sears-pos/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(c *entity.Cliente) error
	Delete(id string) error
	// EnUso indica si existen ventas que referencian al cliente.
	EnUso(id string) (bool, error)
}
