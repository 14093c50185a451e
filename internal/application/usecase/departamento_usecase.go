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

// DepartamentoUseCase casos de uso CRUD para departamentos.
type DepartamentoUseCase struct {
	repo repository.DepartamentoRepository
}

// NewDepartamentoUseCase construye el caso de uso.
func NewDepartamentoUseCase(repo repository.DepartamentoRepository) *DepartamentoUseCase {
	return &DepartamentoUseCase{repo: repo}
}

// Create crea un departamento. El nombre es obligatorio.
func (uc *DepartamentoUseCase) Create(in dto.CreateDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	d := &entity.Departamento{
		ID:            uuid.New().String(),
		Nombre:        strings.TrimSpace(in.Nombre),
		Ubicacion:     in.Ubicacion,
		Encargado:     in.Encargado,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return toDepartamentoResponse(d), nil
}

// GetByID obtiene un departamento por ID.
func (uc *DepartamentoUseCase) GetByID(id string) (*dto.DepartamentoResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDepartamentoResponse(d), nil
}

// List lista departamentos paginados.
func (uc *DepartamentoUseCase) List(page dto.PageRequest) (*dto.DepartamentoListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartamentoResponse, 0, len(items))
	for _, d := range items {
		out = append(out, *toDepartamentoResponse(d))
	}
	return &dto.DepartamentoListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los campos presentes. Un nombre vacío se rechaza.
func (uc *DepartamentoUseCase) Update(id string, in dto.UpdateDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		d.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Ubicacion != nil {
		d.Ubicacion = *in.Ubicacion
	}
	if in.Encargado != nil {
		d.Encargado = *in.Encargado
	}
	d.ActualizadoEn = time.Now()
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return toDepartamentoResponse(d), nil
}

// Delete elimina un departamento. Si tiene productos o empleados ligados
// retorna ErrEnUso y no borra nada.
func (uc *DepartamentoUseCase) Delete(id string) error {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
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

func toDepartamentoResponse(d *entity.Departamento) *dto.DepartamentoResponse {
	return &dto.DepartamentoResponse{
		ID:        d.ID,
		Nombre:    d.Nombre,
		Ubicacion: d.Ubicacion,
		Encargado: d.Encargado,
		CreadoEn:  d.CreadoEn,
	}
}
