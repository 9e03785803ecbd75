package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
	"github.com/palonegro-conectado/server/utils"
)

// CtxUsuario es la clave bajo la que AuthJWT deja el usuario autenticado.
const CtxUsuario = "usuario"

// AuthJWT valida el encabezado Authorization: Bearer <token>, carga el usuario
// y lo inyecta en el contexto de la petición.
func AuthJWT(db *gorm.DB, secreto []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			return
		}
		rawToken := strings.TrimSpace(authHeader[7:])

		claims, err := utils.VerificarToken(secreto, rawToken)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpirado) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expirado"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		var usuario models.Usuario
		if err := db.First(&usuario, claims.UsuarioID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			return
		}

		c.Set(CtxUsuario, usuario)
		c.Next()
	}
}

// UsuarioActual recupera el usuario inyectado por AuthJWT.
func UsuarioActual(c *gin.Context) models.Usuario {
	return c.MustGet(CtxUsuario).(models.Usuario)
}
