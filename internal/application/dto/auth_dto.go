package dto

import "time"

// RegisterRequest entrada para crear una cuenta de acceso ligada a un empleado.
type RegisterRequest struct {
	EmpleadoID string `json:"empleado_id" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de una cuenta de acceso (sin hash).
type UsuarioResponse struct {
	ID         string    `json:"id"`
	EmpleadoID string    `json:"empleado_id"`
	Email      string    `json:"email"`
	Activo     bool      `json:"activo"`
	CreadoEn   time.Time `json:"creado_en"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token       string          `json:"token"`
	Usuario     UsuarioResponse `json:"usuario"`
	NivelAcceso int             `json:"nivel_acceso"`
}
