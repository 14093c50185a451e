package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade NivelAcceso para que el middleware pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UsuarioID   string `json:"usuario_id"`
	EmpleadoID  string `json:"empleado_id"`
	NivelAcceso int    `json:"nivel_acceso"`
}

// Generate genera un token JWT firmado que incluye usuarioID, empleadoID y nivel de acceso.
func Generate(secret, usuarioID, empleadoID string, nivelAcceso int, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UsuarioID:   usuarioID,
		EmpleadoID:  empleadoID,
		NivelAcceso: nivelAcceso,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve usuarioID, empleadoID y nivel de acceso.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (usuarioID, empleadoID string, nivelAcceso int, err error) {
	if secret == "" {
		return "", "", 0, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", 0, fmt.Errorf("claims inválidos")
	}
	return claims.UsuarioID, claims.EmpleadoID, claims.NivelAcceso, nil
}
