package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Departamentos ─────────────────────────────────────────────────────────────

// CreateDepartamentoRequest entrada para crear un departamento.
type CreateDepartamentoRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Ubicacion string `json:"ubicacion"`
	Encargado string `json:"encargado"`
}

// UpdateDepartamentoRequest entrada para actualizar un departamento.
type UpdateDepartamentoRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Ubicacion *string `json:"ubicacion"`
	Encargado *string `json:"encargado"`
}

// DepartamentoResponse salida de un departamento.
type DepartamentoResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Ubicacion string    `json:"ubicacion"`
	Encargado string    `json:"encargado"`
	CreadoEn  time.Time `json:"creado_en"`
}

// DepartamentoListResponse lista paginada de departamentos.
type DepartamentoListResponse struct {
	Items []DepartamentoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// CreateProveedorRequest entrada para crear un proveedor.
type CreateProveedorRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Contacto string `json:"contacto"`
	Telefono string `json:"telefono"`
}

// UpdateProveedorRequest entrada para actualizar un proveedor.
type UpdateProveedorRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Contacto *string `json:"contacto"`
	Telefono *string `json:"telefono"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Contacto string    `json:"contacto"`
	Telefono string    `json:"telefono"`
	CreadoEn time.Time `json:"creado_en"`
}

// ProveedorListResponse lista paginada de proveedores.
type ProveedorListResponse struct {
	Items []ProveedorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre         string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion    string          `json:"descripcion"`
	PrecioCosto    decimal.Decimal `json:"precio_costo"`
	PrecioPublico  decimal.Decimal `json:"precio_publico"`
	Stock          int             `json:"stock" validate:"min=0"`
	IDDepartamento *string         `json:"id_departamento"`
	IDProveedor    *string         `json:"id_proveedor"`
	CodigoBarras   *string         `json:"codigo_barras"`
}

// UpdateProductoRequest entrada para actualizar un producto. El stock no se
// modifica aquí: solo lo decrementa la confirmación de venta.
type UpdateProductoRequest struct {
	Nombre         *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion    *string          `json:"descripcion"`
	PrecioCosto    *decimal.Decimal `json:"precio_costo"`
	PrecioPublico  *decimal.Decimal `json:"precio_publico"`
	IDDepartamento *string          `json:"id_departamento"`
	IDProveedor    *string          `json:"id_proveedor"`
	CodigoBarras   *string          `json:"codigo_barras"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion"`
	PrecioCosto        decimal.Decimal `json:"precio_costo"`
	PrecioPublico      decimal.Decimal `json:"precio_publico"`
	Stock              int             `json:"stock"`
	IDDepartamento     *string         `json:"id_departamento,omitempty"`
	IDProveedor        *string         `json:"id_proveedor,omitempty"`
	CodigoBarras       *string         `json:"codigo_barras,omitempty"`
	NombreDepartamento string          `json:"nombre_departamento,omitempty"`
	NombreProveedor    string          `json:"nombre_proveedor,omitempty"`
	CreadoEn           time.Time       `json:"creado_en"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// CreateEmpleadoRequest entrada para crear un empleado.
type CreateEmpleadoRequest struct {
	Nombre         string  `json:"nombre" validate:"required,min=1,max=200"`
	Domicilio      string  `json:"domicilio"`
	Puesto         string  `json:"puesto"`
	IDDepartamento *string `json:"id_departamento"`
	NivelAcceso    int     `json:"nivel_acceso" validate:"min=1,max=3"`
}

// UpdateEmpleadoRequest entrada para actualizar un empleado.
type UpdateEmpleadoRequest struct {
	Nombre         *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Domicilio      *string `json:"domicilio"`
	Puesto         *string `json:"puesto"`
	IDDepartamento *string `json:"id_departamento"`
	NivelAcceso    *int    `json:"nivel_acceso" validate:"omitempty,min=1,max=3"`
}

// EmpleadoResponse salida de un empleado.
type EmpleadoResponse struct {
	ID                 string    `json:"id"`
	Nombre             string    `json:"nombre"`
	Domicilio          string    `json:"domicilio"`
	Puesto             string    `json:"puesto"`
	IDDepartamento     *string   `json:"id_departamento,omitempty"`
	NombreDepartamento string    `json:"nombre_departamento,omitempty"`
	NivelAcceso        int       `json:"nivel_acceso"`
	CreadoEn           time.Time `json:"creado_en"`
}

// EmpleadoListResponse lista paginada de empleados.
type EmpleadoListResponse struct {
	Items []EmpleadoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CreateClienteRequest entrada para crear un cliente. Correo es obligatorio.
type CreateClienteRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Correo   string `json:"correo" validate:"required,email"`
	Telefono string `json:"telefono"`
}

// UpdateClienteRequest entrada para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Correo   *string `json:"correo" validate:"omitempty,email"`
	Telefono *string `json:"telefono"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID       string    `json:"id"`
	Nombre   string    `json:"nombre"`
	Correo   string    `json:"correo"`
	Telefono string    `json:"telefono"`
	CreadoEn time.Time `json:"creado_en"`
}

// ClienteListResponse lista paginada de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
