package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El stock solo se fija al
// crear; después únicamente lo decrementa la confirmación de venta.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto. Nombre obligatorio, precios y stock no negativos.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioCosto.IsNegative() || in.PrecioPublico.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		ID:             uuid.New().String(),
		Nombre:         strings.TrimSpace(in.Nombre),
		Descripcion:    in.Descripcion,
		PrecioCosto:    in.PrecioCosto,
		PrecioPublico:  in.PrecioPublico,
		Stock:          in.Stock,
		IDDepartamento: in.IDDepartamento,
		IDProveedor:    in.IDProveedor,
		CodigoBarras:   in.CodigoBarras,
		CreadoEn:       now,
		ActualizadoEn:  now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductoResponse(p), nil
}

// List lista productos paginados con los nombres de departamento y proveedor.
func (uc *ProductoUseCase) List(page dto.PageRequest) (*dto.ProductoListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Buscar busca productos por texto para la caja.
func (uc *ProductoUseCase) Buscar(texto string, limit int) ([]dto.ProductoResponse, error) {
	if strings.TrimSpace(texto) == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	items, err := uc.repo.Buscar(texto, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// Update actualiza los campos presentes. No modifica el stock.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.PrecioCosto != nil {
		if in.PrecioCosto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.PrecioCosto = *in.PrecioCosto
	}
	if in.PrecioPublico != nil {
		if in.PrecioPublico.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.PrecioPublico = *in.PrecioPublico
	}
	if in.IDDepartamento != nil {
		p.IDDepartamento = in.IDDepartamento
	}
	if in.IDProveedor != nil {
		p.IDProveedor = in.IDProveedor
	}
	if in.CodigoBarras != nil {
		p.CodigoBarras = in.CodigoBarras
	}
	p.ActualizadoEn = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Delete elimina un producto. Si aparece en alguna venta retorna ErrEnUso.
func (uc *ProductoUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	enUso, err := uc.repo.EnUso(id)
	if err != nil {
		return err
	}
	if enUso {
		return domain.ErrEnUso
	}
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                 p.ID,
		Nombre:             p.Nombre,
		Descripcion:        p.Descripcion,
		PrecioCosto:        p.PrecioCosto,
		PrecioPublico:      p.PrecioPublico,
		Stock:              p.Stock,
		IDDepartamento:     p.IDDepartamento,
		IDProveedor:        p.IDProveedor,
		CodigoBarras:       p.CodigoBarras,
		NombreDepartamento: p.NombreDepartamento,
		NombreProveedor:    p.NombreProveedor,
		CreadoEn:           p.CreadoEn,
	}
}
