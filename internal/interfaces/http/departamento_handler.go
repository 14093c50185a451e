package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/internal/application/usecase"
	"github.com/tu-usuario/sears-pos/internal/domain"
)

// DepartamentoHandler maneja las peticiones HTTP para Departamento (protegido).
type DepartamentoHandler struct {
	uc *usecase.DepartamentoUseCase
}

// NewDepartamentoHandler construye el handler.
func NewDepartamentoHandler(uc *usecase.DepartamentoUseCase) *DepartamentoHandler {
	return &DepartamentoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear departamento
// @Tags         departamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDepartamentoRequest  true  "Datos del departamento"
// @Success      201   {object}  dto.DepartamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/departamentos [post]
func (h *DepartamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepartamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener departamento por ID
// @Tags         departamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del departamento"
// @Success      200  {object}  dto.DepartamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/departamentos/{id} [get]
func (h *DepartamentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "departamento no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar departamentos
// @Tags         departamentos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DepartamentoListResponse
// @Router       /api/departamentos [get]
func (h *DepartamentoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar departamento
// @Tags         departamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del departamento"
// @Param        body  body  dto.UpdateDepartamentoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DepartamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/departamentos/{id} [put]
func (h *DepartamentoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepartamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre no puede quedar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "departamento no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar departamento
// @Tags         departamentos
// @Security     Bearer
// @Param        id  path  string  true  "ID del departamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/departamentos/{id} [delete]
func (h *DepartamentoHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "departamento no encontrado"})
		}
		if errors.Is(err, domain.ErrEnUso) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EN_USO", Message: "el departamento tiene productos o empleados ligados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
