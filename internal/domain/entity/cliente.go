package entity

import "time"

// ClienteMostradorID es el cliente centinela "Público en General" que la
// migración inicial inserta; se usa cuando la venta no tiene cliente elegido.
const ClienteMostradorID = "00000000-0000-0000-0000-000000000001"

// Cliente representa un cliente registrado de la tienda.
type Cliente struct {
	ID            string
	Nombre        string
	Correo        string
	Telefono      string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
