package usecase

import (
	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
)

// TicketGenerator genera el ticket PDF de una venta confirmada.
type TicketGenerator interface {
	GenerarTicket(v *entity.Venta, detalles []*entity.DetalleVenta) ([]byte, error)
}

// VentaUseCase consultas del historial de ventas y emisión de tickets.
// Las ventas confirmadas son inmutables: aquí no hay Update ni Delete.
type VentaUseCase struct {
	repo    repository.VentaRepository
	tickets TicketGenerator
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository, tickets TicketGenerator) *VentaUseCase {
	return &VentaUseCase{repo: repo, tickets: tickets}
}

// GetByID obtiene una venta con su detalle.
func (uc *VentaUseCase) GetByID(id string) (*dto.VentaResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	detalles, err := uc.repo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(v, detalles), nil
}

// List lista ventas paginadas, más recientes primero, sin detalle.
func (uc *VentaUseCase) List(page dto.PageRequest) (*dto.VentaListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(items))
	for _, v := range items {
		out = append(out, *toVentaResponse(v, nil))
	}
	return &dto.VentaListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Ticket genera el PDF del ticket de la venta. Retorna (nil, nil) si la venta
// no existe.
func (uc *VentaUseCase) Ticket(id string) ([]byte, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	detalles, err := uc.repo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	return uc.tickets.GenerarTicket(v, detalles)
}

func toVentaResponse(v *entity.Venta, detalles []*entity.DetalleVenta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:         v.ID,
		Folio:      v.Folio,
		Fecha:      v.Fecha,
		Cliente:    v.NombreCliente,
		Empleado:   v.NombreEmpleado,
		Subtotal:   v.Subtotal,
		IVA:        v.IVA,
		Total:      v.Total,
		Estado:     v.Estado,
		MetodoPago: v.MetodoPago,
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.DetalleVentaResponse{
			ProductoID:     d.IDProducto,
			Nombre:         d.NombreProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Importe:        d.Importe,
		})
	}
	return resp
}
