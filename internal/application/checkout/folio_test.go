package checkout

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNuevoFolio_Formato(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	folio := NuevoFolio(fecha)

	assert.Regexp(t, regexp.MustCompile(`^V-20240315-\d{4}$`), folio,
		"el folio debe respetar el contrato V-YYYYMMDD-NNNN")
}
