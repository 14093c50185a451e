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

// EmpleadoUseCase casos de uso CRUD para empleados.
type EmpleadoUseCase struct {
	repo repository.EmpleadoRepository
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(repo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{repo: repo}
}

// Create crea un empleado. Sin nivel explícito queda como vendedor.
func (uc *EmpleadoUseCase) Create(in dto.CreateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	nivel := in.NivelAcceso
	if nivel == 0 {
		nivel = entity.NivelVendedor
	}
	if nivel < entity.NivelVendedor || nivel > entity.NivelAdmin {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Empleado{
		ID:             uuid.New().String(),
		Nombre:         strings.TrimSpace(in.Nombre),
		Domicilio:      in.Domicilio,
		Puesto:         in.Puesto,
		IDDepartamento: in.IDDepartamento,
		NivelAcceso:    nivel,
		CreadoEn:       now,
		ActualizadoEn:  now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(e), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmpleadoUseCase) GetByID(id string) (*dto.EmpleadoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEmpleadoResponse(e), nil
}

// List lista empleados paginados con el nombre de su departamento.
func (uc *EmpleadoUseCase) List(page dto.PageRequest) (*dto.EmpleadoListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(items))
	for _, e := range items {
		out = append(out, *toEmpleadoResponse(e))
	}
	return &dto.EmpleadoListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza los campos presentes.
func (uc *EmpleadoUseCase) Update(id string, in dto.UpdateEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrInvalidInput
		}
		e.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Domicilio != nil {
		e.Domicilio = *in.Domicilio
	}
	if in.Puesto != nil {
		e.Puesto = *in.Puesto
	}
	if in.IDDepartamento != nil {
		e.IDDepartamento = in.IDDepartamento
	}
	if in.NivelAcceso != nil {
		if *in.NivelAcceso < entity.NivelVendedor || *in.NivelAcceso > entity.NivelAdmin {
			return nil, domain.ErrInvalidInput
		}
		e.NivelAcceso = *in.NivelAcceso
	}
	e.ActualizadoEn = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmpleadoResponse(e), nil
}

// Delete elimina un empleado. Si registró ventas retorna ErrEnUso.
func (uc *EmpleadoUseCase) Delete(id string) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
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

func toEmpleadoResponse(e *entity.Empleado) *dto.EmpleadoResponse {
	return &dto.EmpleadoResponse{
		ID:                 e.ID,
		Nombre:             e.Nombre,
		Domicilio:          e.Domicilio,
		Puesto:             e.Puesto,
		IDDepartamento:     e.IDDepartamento,
		NombreDepartamento: e.NombreDepartamento,
		NivelAcceso:        e.NivelAcceso,
		CreadoEn:           e.CreadoEn,
	}
}
