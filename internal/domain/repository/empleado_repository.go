package repository

import "github.com/tu-usuario/sears-pos/internal/domain/entity"

// EmpleadoRepository define el puerto de persistencia para Empleado.
type EmpleadoRepository interface {
	Create(e *entity.Empleado) error
	GetByID(id string) (*entity.Empleado, error)
	List(limit, offset int) ([]*entity.Empleado, error)
	Update(e *entity.Empleado) error
	Delete(id string) error
	// EnUso indica si existen ventas que referencian al empleado.
	EnUso(id string) (bool, error)
}
