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

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente. Nombre y correo son obligatorios.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Correo) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Cliente{
		ID:            uuid.New().String(),
		Nombre:        strings.TrimSpace(in.Nombre),
		Correo:        strings.ToLower(strings.TrimSpace(in.Correo)),
		Telefono:      in.Telefono,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClienteResponse(c), nil
}

// List lista clientes paginados.
func (uc *ClienteUseCase) List(page dto.PageRequest) (*dto.ClienteListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(items))
	for _, c := range items {
		out = append(out, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los campos presentes. El cliente mostrador no se toca.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	if id == entity.ClienteMostradorID {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Correo != nil {
		if strings.TrimSpace(*in.Correo) == "" {
			return nil, domain.ErrInvalidInput
		}
		c.Correo = strings.ToLower(strings.TrimSpace(*in.Correo))
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	c.ActualizadoEn = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Delete elimina un cliente. El cliente mostrador no puede eliminarse y un
// cliente con ventas retorna ErrEnUso.
func (uc *ClienteUseCase) Delete(id string) error {
	if id == entity.ClienteMostradorID {
		return domain.ErrEnUso
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
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

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nombre:   c.Nombre,
		Correo:   c.Correo,
		Telefono: c.Telefono,
		CreadoEn: c.CreadoEn,
	}
}
