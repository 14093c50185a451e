package repository

import "github.com/tu-usuario/sears-pos/internal/domain/entity"

// DepartamentoRepository define el puerto de persistencia para Departamento.
type DepartamentoRepository interface {
	Create(d *entity.Departamento) error
	GetByID(id string) (*entity.Departamento, error)
	List(limit, offset int) ([]*entity.Departamento, error)
	Update(d *entity.Departamento) error
	Delete(id string) error
	// EnUso indica si existen productos o empleados que referencian al departamento.
	EnUso(id string) (bool, error)
}
