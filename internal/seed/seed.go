package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

// Repos agrupa los repositorios que el seeder necesita.
type Repos struct {
	Departamentos repository.DepartamentoRepository
	Proveedores   repository.ProveedorRepository
	Productos     repository.ProductoRepository
	Empleados     repository.EmpleadoRepository
	Clientes      repository.ClienteRepository
	Usuarios      repository.UsuarioRepository
}

// Demo carga un catálogo de demostración y una cuenta admin
// (admin@sears-pos.local / admin1234). Si ya hay departamentos no hace nada,
// así el seeder puede correr en cada arranque sin duplicar datos.
func Demo(r Repos) error {
	existentes, err := r.Departamentos.List(1, 0)
	if err != nil {
		return err
	}
	if len(existentes) > 0 {
		return nil
	}

	now := time.Now()

	electronica := &entity.Departamento{
		ID: uuid.New().String(), Nombre: "Electrónica", Ubicacion: "Planta baja",
		Encargado: "Laura Jiménez", CreadoEn: now, ActualizadoEn: now,
	}
	hogar := &entity.Departamento{
		ID: uuid.New().String(), Nombre: "Hogar", Ubicacion: "Piso 2",
		Encargado: "Pedro Salinas", CreadoEn: now, ActualizadoEn: now,
	}
	for _, d := range []*entity.Departamento{electronica, hogar} {
		if err := r.Departamentos.Create(d); err != nil {
			return err
		}
	}

	proveedor := &entity.Proveedor{
		ID: uuid.New().String(), Nombre: "Distribuidora del Norte",
		Contacto: "ventas@disnorte.mx", Telefono: "81-5555-0100",
		CreadoEn: now, ActualizadoEn: now,
	}
	if err := r.Proveedores.Create(proveedor); err != nil {
		return err
	}

	productos := []*entity.Producto{
		{
			ID: uuid.New().String(), Nombre: "Televisión 55\" 4K",
			Descripcion:   "Pantalla LED UHD con sintonizador integrado",
			PrecioCosto:   decimal.NewFromInt(6500),
			PrecioPublico: decimal.NewFromInt(9999),
			Stock:         12, IDDepartamento: &electronica.ID, IDProveedor: &proveedor.ID,
			CreadoEn: now, ActualizadoEn: now,
		},
		{
			ID: uuid.New().String(), Nombre: "Licuadora 10 velocidades",
			Descripcion:   "Vaso de vidrio de 1.5 L",
			PrecioCosto:   decimal.NewFromInt(420),
			PrecioPublico: decimal.NewFromInt(749),
			Stock:         30, IDDepartamento: &hogar.ID, IDProveedor: &proveedor.ID,
			CreadoEn: now, ActualizadoEn: now,
		},
		{
			ID: uuid.New().String(), Nombre: "Plancha de vapor",
			PrecioCosto:   decimal.NewFromInt(280),
			PrecioPublico: decimal.NewFromInt(499),
			Stock:         18, IDDepartamento: &hogar.ID,
			CreadoEn: now, ActualizadoEn: now,
		},
	}
	for _, p := range productos {
		if err := r.Productos.Create(p); err != nil {
			return err
		}
	}

	admin := &entity.Empleado{
		ID: uuid.New().String(), Nombre: "Administrador General",
		Puesto: "Gerente de tienda", NivelAcceso: entity.NivelAdmin,
		CreadoEn: now, ActualizadoEn: now,
	}
	vendedor := &entity.Empleado{
		ID: uuid.New().String(), Nombre: "Luis Mendoza",
		Puesto: "Vendedor de piso", IDDepartamento: &electronica.ID,
		NivelAcceso: entity.NivelVendedor, CreadoEn: now, ActualizadoEn: now,
	}
	for _, e := range []*entity.Empleado{admin, vendedor} {
		if err := r.Empleados.Create(e); err != nil {
			return err
		}
	}

	cliente := &entity.Cliente{
		ID: uuid.New().String(), Nombre: "Ana Torres",
		Correo: "ana.torres@example.com", Telefono: "55-1234-5678",
		CreadoEn: now, ActualizadoEn: now,
	}
	if err := r.Clientes.Create(cliente); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario := &entity.Usuario{
		ID:            uuid.New().String(),
		EmpleadoID:    admin.ID,
		Email:         "admin@sears-pos.local",
		PasswordHash:  string(hash),
		Activo:        true,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	return r.Usuarios.Create(usuario)
}
