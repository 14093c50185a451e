package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/sears-pos/internal/application/dto"
	"github.com/tu-usuario/sears-pos/internal/domain"
	"github.com/tu-usuario/sears-pos/internal/domain/entity"
	"github.com/tu-usuario/sears-pos/internal/domain/repository"
	"github.com/tu-usuario/sears-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. Cada cuenta
// queda ligada a un empleado; el nivel de acceso del empleado viaja en el JWT.
type AuthUseCase struct {
	usuarioRepo  repository.UsuarioRepository
	empleadoRepo repository.EmpleadoRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, empleadoRepo repository.EmpleadoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, empleadoRepo: empleadoRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea una cuenta: valida que el empleado exista, hashea el
// password con bcrypt y persiste. Devuelve ErrDuplicate si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 || in.EmpleadoID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.usuarioRepo.FindByEmail(email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	empleado, err := uc.empleadoRepo.GetByID(in.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if empleado == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:            uuid.New().String(),
		EmpleadoID:    in.EmpleadoID,
		Email:         email,
		PasswordHash:  string(hash),
		Activo:        true,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica email/password, genera JWT con el nivel de acceso del
// empleado y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}
	nivel := entity.NivelVendedor
	if empleado, err := uc.empleadoRepo.GetByID(usuario.EmpleadoID); err == nil && empleado != nil {
		nivel = empleado.NivelAcceso
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.EmpleadoID, nivel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		Usuario:     *toUsuarioResponse(usuario),
		NivelAcceso: nivel,
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:         u.ID,
		EmpleadoID: u.EmpleadoID,
		Email:      u.Email,
		Activo:     u.Activo,
		CreadoEn:   u.CreadoEn,
	}
}
