package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/palonegro-conectado/server/models"
)

var (
	ErrTokenExpirado = errors.New("token expirado")
	ErrTokenInvalido = errors.New("token inválido")
)

type Claims struct {
	UsuarioID uint       `json:"id"`
	Rol       models.Rol `json:"rol"`
	jwt.RegisteredClaims
}

// GenerarToken firma un JWT HS256 con id y rol del usuario, válido por 24h.
func GenerarToken(secreto []byte, usuarioID uint, rol models.Rol) (string, error) {
	if len(secreto) == 0 {
		return "", errors.New("secreto JWT no configurado")
	}

	claims := Claims{
		UsuarioID: usuarioID,
		Rol:       rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secreto)
}

// VerificarToken valida la firma y la vigencia del token y devuelve sus claims.
func VerificarToken(secreto []byte, tokenStr string) (*Claims, error) {
	if len(secreto) == 0 {
		return nil, errors.New("secreto JWT no configurado")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secreto, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
