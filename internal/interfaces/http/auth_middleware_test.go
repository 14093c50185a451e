package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	apphttp "github.com/tu-usuario/sears-pos/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/sears-pos/pkg/jwt"
)

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUsuarioID  = "00000000-0000-0000-0000-0000000000aa"
	testEmpleadoID = "00000000-0000-0000-0000-0000000000bb"
	testIssuer     = "sears-pos-test"
	testExpMin     = 60
)

// buildTestApp construye una app Fiber mínima con AuthMiddleware + RequireNivel
// y un handler dummy que devuelve 200 si pasa los middlewares.
func buildTestApp(nivelMinimo int) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireNivel(nivelMinimo),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"nivel": apphttp.GetNivelAcceso(c),
			})
		},
	)
	return app
}

// tokenConNivel genera un JWT con el nivel de acceso indicado.
func tokenConNivel(t *testing.T, nivel int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, testEmpleadoID, nivel, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireNivel_AdminAccedeRutaGerente(t *testing.T) {
	app := buildTestApp(entity.NivelGerente)
	resp := doRequest(t, app, tokenConNivel(t, entity.NivelAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un admin debe poder acceder a rutas de gerente")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(entity.NivelAdmin), body["nivel"])
}

func TestRequireNivel_GerenteAccedeRutaGerente(t *testing.T) {
	app := buildTestApp(entity.NivelGerente)
	resp := doRequest(t, app, tokenConNivel(t, entity.NivelGerente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireNivel_VendedorBloqueadoEnRutaGerente(t *testing.T) {
	app := buildTestApp(entity.NivelGerente)
	resp := doRequest(t, app, tokenConNivel(t, entity.NivelVendedor))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un vendedor no debe poder escribir catálogos")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireNivel_TokenSinNivel_Retorna401(t *testing.T) {
	// Nivel 0 emula un token legacy sin el claim.
	app := buildTestApp(entity.NivelGerente)
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, testEmpleadoID, 0, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_NIVEL")
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.NivelVendedor)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.NivelVendedor)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"usuario_id":  apphttp.GetUsuarioID(c),
			"empleado_id": apphttp.GetEmpleadoID(c),
			"nivel":       apphttp.GetNivelAcceso(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenConNivel(t, entity.NivelVendedor))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUsuarioID, body["usuario_id"])
	assert.Equal(t, testEmpleadoID, body["empleado_id"])
	assert.Equal(t, float64(entity.NivelVendedor), body["nivel"])
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, testEmpleadoID, entity.NivelAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	usuarioID, empleadoID, nivel, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUsuarioID, usuarioID)
	assert.Equal(t, testEmpleadoID, empleadoID)
	assert.Equal(t, entity.NivelAdmin, nivel)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, testEmpleadoID, entity.NivelAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, testEmpleadoID, entity.NivelAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
