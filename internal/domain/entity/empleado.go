package entity

import "time"

// Niveles de acceso de empleados.
const (
	NivelVendedor = 1
	NivelGerente  = 2
	NivelAdmin    = 3
)

// Empleado representa un empleado de la tienda.
type Empleado struct {
	ID             string
	Nombre         string
	Domicilio      string
	Puesto         string
	IDDepartamento *string // opcional
	NivelAcceso    int
	CreadoEn       time.Time
	ActualizadoEn  time.Time

	NombreDepartamento string // para listados (LEFT JOIN)
}
