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

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor. El nombre es obligatorio.
func (uc *ProveedorUseCase) Create(in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Proveedor{
		ID:            uuid.New().String(),
		Nombre:        strings.TrimSpace(in.Nombre),
		Contacto:      in.Contacto,
		Telefono:      in.Telefono,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProveedorResponse(p), nil
}

// List lista proveedores paginados.
func (uc *ProveedorUseCase) List(page dto.PageRequest) (*dto.ProveedorListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los campos presentes.
func (uc *ProveedorUseCase) Update(id string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
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
	if in.Contacto != nil {
		p.Contacto = *in.Contacto
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	p.ActualizadoEn = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProveedorResponse(p), nil
}

// Delete elimina un proveedor. Si tiene productos ligados retorna ErrEnUso.
func (uc *ProveedorUseCase) Delete(id string) error {
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

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Contacto: p.Contacto,
		Telefono: p.Telefono,
		CreadoEn: p.CreadoEn,
	}
}
