package repository

import "github.com/tu-usuario/sears-pos/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	Delete(id string) error
	// EnUso indica si existen líneas de venta que referencian al producto.
	EnUso(id string) (bool, error)
	// Buscar devuelve productos cuyo nombre contiene el texto (sin distinguir
	// mayúsculas) o cuyo id o código de barras coincide exacto. Solo lectura.
	Buscar(texto string, limit int) ([]*entity.Producto, error)
	// DescontarStock resta cantidad al stock solo si alcanza
	// (stock = stock - n WHERE stock >= n). Si no alcanza retorna
	// *domain.StockInsuficienteError con el stock vivo.
	DescontarStock(id string, cantidad int) error
}
