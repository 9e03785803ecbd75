package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
	"github.com/palonegro-conectado/server/utils"
)

type AuthController struct {
	DB      *gorm.DB
	Secreto []byte
	Log     *logrus.Logger
}

func NewAuthController(db *gorm.DB, secreto []byte, log *logrus.Logger) *AuthController {
	return &AuthController{DB: db, Secreto: secreto, Log: log}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login valida credenciales y emite el JWT. El mensaje de error es el mismo
// para email desconocido y contraseña incorrecta.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var usuario models.Usuario
	if err := ac.DB.Where("email = ?", req.Email).First(&usuario).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ac.Log.WithError(err).Error("login: fallo al consultar usuario")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	if !utils.CheckPassword(usuario.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	token, err := utils.GenerarToken(ac.Secreto, usuario.ID, usuario.Rol)
	if err != nil {
		ac.Log.WithError(err).Error("login: no se pudo firmar el token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":                  usuario.ID,
			"nombre":              usuario.Nombre,
			"email":               usuario.Email,
			"rol":                 usuario.Rol,
			"debeCambiarPassword": usuario.DebeCambiarPassword,
		},
	})
}
