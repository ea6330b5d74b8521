package service

import (
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService login de administrador para los endpoints de
// mantenimiento (/admin/*). No hay usuarios finales con cuenta: los
// userId del dataset son anónimos, solo el operador se autentica.
type AuthService struct {
	passwordHash []byte
	jwtSecret    []byte
}

func NewAuthService(adminPassword, secret string) *AuthService {
	// hasheamos al construir para no guardar la contraseña en claro
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[auth] no se pudo hashear la contraseña admin: %v", err)
	}
	return &AuthService{passwordHash: hash, jwtSecret: []byte(secret)}
}

// Login valida la contraseña admin y emite un JWT con role=admin.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
