package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUsuarioID   = "usuario_id"
	LocalEmpleadoID  = "empleado_id"
	LocalNivelAcceso = "nivel_acceso"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		usuarioID, empleadoID, nivelAcceso, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalEmpleadoID, empleadoID)
		c.Locals(LocalNivelAcceso, nivelAcceso)
		return c.Next()
	}
}

// RequireNivel devuelve un middleware que exige un nivel de acceso mínimo.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalNivelAcceso).
//
//   - 401 → sin nivel en el contexto (token legacy o middleware mal ordenado).
//   - 403 → nivel insuficiente para la ruta.
func RequireNivel(minimo int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nivel := GetNivelAcceso(c)
		if nivel == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_NIVEL",
				Message: "nivel de acceso no encontrado en el token",
			})
		}
		if nivel < minimo {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "nivel de acceso insuficiente para esta operación",
			})
		}
		return c.Next()
	}
}

// GetUsuarioID devuelve el UsuarioID del contexto (después del middleware de auth).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmpleadoID devuelve el EmpleadoID del contexto (después del middleware de auth).
func GetEmpleadoID(c *fiber.Ctx) string {
	v := c.Locals(LocalEmpleadoID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetNivelAcceso devuelve el nivel de acceso del contexto; 0 si no hay.
func GetNivelAcceso(c *fiber.Ctx) int {
	v := c.Locals(LocalNivelAcceso)
	if v == nil {
		return 0
	}
	n, _ := v.(int)
	return n
}
