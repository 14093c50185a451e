package entity

import "time"

// Departamento representa un departamento de la tienda (catálogo).
type Departamento struct {
	ID            string
	Nombre        string
	Ubicacion     string
	Encargado     string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
