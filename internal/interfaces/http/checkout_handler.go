package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sears-pos/internal/application/checkout"
	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/internal/domain"
)

// CheckoutHandler maneja la pantalla de cobro: sesiones, carrito y
// confirmación de venta.
type CheckoutHandler struct {
	engine *checkout.Engine
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(engine *checkout.Engine) *CheckoutHandler {
	return &CheckoutHandler{engine: engine}
}

// AbrirSesion godoc
// @Summary      Abrir sesión de cobro
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SesionResponse
// @Router       /api/caja/sesiones [post]
func (h *CheckoutHandler) AbrirSesion(c *fiber.Ctx) error {
	id := h.engine.NuevaSesion()
	return c.Status(fiber.StatusCreated).JSON(dto.SesionResponse{ID: id})
}

// CerrarSesion godoc
// @Summary      Cerrar sesión de cobro sin confirmar
// @Tags         caja
// @Security     Bearer
// @Param        id  path  string  true  "ID de la sesión"
// @Success      204
// @Router       /api/caja/sesiones/{id} [delete]
func (h *CheckoutHandler) CerrarSesion(c *fiber.Ctx) error {
	h.engine.CerrarSesion(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// BuscarProductos godoc
// @Summary      Buscar productos para cobro
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Texto, ID o código de barras"
// @Success      200  {array}  dto.ProductoBusquedaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/caja/productos [get]
func (h *CheckoutHandler) BuscarProductos(c *fiber.Ctx) error {
	texto := c.Query("q")
	productos, err := h.engine.BuscarProductos(texto)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductoBusquedaResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, dto.ProductoBusquedaResponse{
			ID:            p.ID,
			Nombre:        p.Nombre,
			Descripcion:   p.Descripcion,
			PrecioPublico: p.PrecioPublico,
			Stock:         p.Stock,
			CodigoBarras:  p.CodigoBarras,
		})
	}
	return c.JSON(out)
}

// AgregarLinea godoc
// @Summary      Agregar producto al carrito
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.AgregarLineaRequest  true  "producto_id y cantidad"
// @Success      200   {object}  dto.CarritoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/lineas [post]
func (h *CheckoutHandler) AgregarLinea(c *fiber.Ctx) error {
	var in dto.AgregarLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lineas, totales, err := h.engine.AgregarLinea(c.Params("id"), in.ProductoID, in.Cantidad)
	if err != nil {
		return h.carritoError(c, err)
	}
	return c.JSON(toCarritoResponse(lineas, totales))
}

// QuitarLinea godoc
// @Summary      Quitar línea del carrito
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la sesión"
// @Param        indice  path  int     true  "Posición de la línea (base 0)"
// @Success      200     {object}  dto.CarritoResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/lineas/{indice} [delete]
func (h *CheckoutHandler) QuitarLinea(c *fiber.Ctx) error {
	indice, err := c.ParamsInt("indice")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "indice inválido"})
	}
	lineas, totales, err := h.engine.QuitarLinea(c.Params("id"), indice)
	if err != nil {
		return h.carritoError(c, err)
	}
	return c.JSON(toCarritoResponse(lineas, totales))
}

// VaciarCarrito godoc
// @Summary      Vaciar el carrito de la sesión
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID de la sesión"
// @Param        confirmado  query  bool    false  "Debe ser true si el carrito tiene líneas"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/carrito [delete]
func (h *CheckoutHandler) VaciarCarrito(c *fiber.Ctx) error {
	confirmado := c.QueryBool("confirmado", false)
	if err := h.engine.VaciarCarrito(c.Params("id"), confirmado); err != nil {
		if errors.Is(err, domain.ErrConfirmacionRequerida) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRMACION_REQUERIDA", Message: "el carrito tiene líneas; repita con confirmado=true"})
		}
		return h.carritoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Carrito godoc
// @Summary      Consultar el carrito de la sesión
// @Tags         caja
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.CarritoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/carrito [get]
func (h *CheckoutHandler) Carrito(c *fiber.Ctx) error {
	lineas, totales, err := h.engine.Carrito(c.Params("id"))
	if err != nil {
		return h.carritoError(c, err)
	}
	return c.JSON(toCarritoResponse(lineas, totales))
}

// ConfirmarVenta godoc
// @Summary      Confirmar la venta del carrito
// @Tags         caja
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.ConfirmarVentaRequest  true  "cliente_id (opcional), empleado_id, metodo_pago"
// @Success      201   {object}  dto.ReciboResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caja/sesiones/{id}/confirmar [post]
func (h *CheckoutHandler) ConfirmarVenta(c *fiber.Ctx) error {
	var in dto.ConfirmarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El empleado de la sesión autenticada opera la caja salvo indicación explícita.
	if in.EmpleadoID == "" {
		in.EmpleadoID = GetEmpleadoID(c)
	}
	recibo, err := h.engine.ConfirmarVenta(c.Context(), c.Params("id"), in.ClienteID, in.EmpleadoID, in.MetodoPago)
	if err != nil {
		var se *domain.StockInsuficienteError
		if errors.As(err, &se) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: se.Error()})
		}
		if errors.Is(err, domain.ErrCarritoVacio) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CARRITO_VACIO", Message: "el carrito está vacío"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empleado_id es requerido"})
		}
		return h.carritoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReciboResponse(recibo))
}

func (h *CheckoutHandler) carritoError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión o recurso no encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFICIENTE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func toCarritoResponse(lineas []checkout.Linea, totales checkout.Totales) dto.CarritoResponse {
	out := dto.CarritoResponse{
		Lineas: make([]dto.LineaResponse, 0, len(lineas)),
		Totales: dto.TotalesResponse{
			Subtotal: totales.Subtotal,
			IVA:      totales.IVA,
			Total:    totales.Total,
		},
	}
	for _, l := range lineas {
		out.Lineas = append(out.Lineas, dto.LineaResponse{
			ProductoID:     l.ProductoID,
			Nombre:         l.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.PrecioUnitario,
			Subtotal:       l.Subtotal(),
		})
	}
	return out
}

func toReciboResponse(r *checkout.Recibo) dto.ReciboResponse {
	out := dto.ReciboResponse{
		VentaID:    r.VentaID,
		Folio:      r.Folio,
		Fecha:      r.Fecha,
		Cliente:    r.Cliente,
		Empleado:   r.Empleado,
		MetodoPago: r.MetodoPago,
		Subtotal:   r.Subtotal,
		IVA:        r.IVA,
		Total:      r.Total,
		Texto:      r.Texto(),
	}
	for _, l := range r.Lineas {
		out.Lineas = append(out.Lineas, dto.ReciboLineaResponse{
			Cantidad:       l.Cantidad,
			Nombre:         l.Nombre,
			PrecioUnitario: l.PrecioUnitario,
			Importe:        l.Importe,
		})
	}
	return out
}
