package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminCredentials usuario administrador configurado por entorno.
type AdminCredentials struct {
	Username     string
	PasswordHash string // bcrypt
}

// AuthUseCase login del administrador que puede reemplazar el dataset.
type AuthUseCase struct {
	admin  AdminCredentials
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(admin AdminCredentials, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{admin: admin, jwtCfg: jwtCfg}
}

// Enabled indica si hay credenciales y secreto configurados.
func (uc *AuthUseCase) Enabled() bool {
	return uc.admin.PasswordHash != "" && uc.jwtCfg.Secret != ""
}

// Login verifica usuario/password y devuelve un token con rol admin.
// Cualquier fallo de credenciales es domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() {
		return nil, fmt.Errorf("%w: login deshabilitado", domain.ErrUnauthorized)
	}
	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(uc.admin.PasswordHash), []byte(in.Password))
	if !userOK || passErr != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.admin.Username, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
