package entity

import "time"

// Proveedor representa un proveedor de mercancía (catálogo).
type Proveedor struct {
	ID            string
	Nombre        string
	Contacto      string
	Telefono      string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
