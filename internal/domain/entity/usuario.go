package entity

import "time"

// Usuario es la cuenta de acceso al sistema ligada a un empleado.
type Usuario struct {
	ID            string
	EmpleadoID    string
	Email         string
	PasswordHash  string
	Activo        bool
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
