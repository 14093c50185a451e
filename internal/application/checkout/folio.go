package checkout

import (
	"fmt"
	"math/rand"
	"time"
)

// NuevoFolio genera un folio legible con la fecha y un sufijo aleatorio de
// 4 dígitos: V-YYYYMMDD-NNNN. El sufijo no garantiza unicidad por sí solo;
// la columna ventas.folio es UNIQUE y ConfirmarVenta reintenta con un folio
// nuevo si la inserción choca.
func NuevoFolio(fecha time.Time) string {
	return fmt.Sprintf("V-%s-%04d", fecha.Format("20060102"), rand.Intn(10000))
}
