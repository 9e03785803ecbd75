package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
	"github.com/palonegro-conectado/server/utils"
)

type UsuarioController struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewUsuarioController(db *gorm.DB, log *logrus.Logger) *UsuarioController {
	return &UsuarioController{DB: db, Log: log}
}

func (uc *UsuarioController) Listar(c *gin.Context) {
	var usuarios []models.Usuario
	if err := uc.DB.Order("id ASC").Find(&usuarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los usuarios"})
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

type crearUsuarioReq struct {
	Nombre   string     `json:"nombre" binding:"required,min=1"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=6"`
	Rol      models.Rol `json:"rol" binding:"required"`
}

// Crear da de alta una cuenta con contraseña temporal: el usuario queda
// obligado a cambiarla en su primer ingreso.
func (uc *UsuarioController) Crear(c *gin.Context) {
	var req crearUsuarioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}
	if !models.RolValido(req.Rol) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rol desconocido"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el usuario"})
		return
	}

	usuario := models.Usuario{
		Nombre:              req.Nombre,
		Email:               req.Email,
		Password:            hash,
		Rol:                 req.Rol,
		DebeCambiarPassword: true,
	}
	if err := uc.DB.Create(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado"})
			return
		}
		uc.Log.WithError(err).Error("no se pudo crear el usuario")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el usuario"})
		return
	}

	c.JSON(http.StatusCreated, usuario)
}

func (uc *UsuarioController) Obtener(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	actual := middleware.UsuarioActual(c)
	if actual.ID != uint(id) && actual.Rol != models.RolAdministrador {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, usuario)
}

type actualizarUsuarioReq struct {
	Nombre *string `json:"nombre"`
	Email  *string `json:"email" binding:"omitempty,email"`
}

func (uc *UsuarioController) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	actual := middleware.UsuarioActual(c)
	if actual.ID != uint(id) && actual.Rol != models.RolAdministrador {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
		return
	}

	var req actualizarUsuarioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var usuario models.Usuario
	if err := uc.DB.First(&usuario, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	updates := map[string]interface{}{}
	if req.Nombre != nil {
		updates["nombre"] = *req.Nombre
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) > 0 {
		if err := uc.DB.Model(&usuario).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el usuario"})
			return
		}
	}
	c.JSON(http.StatusOK, usuario)
}

func (uc *UsuarioController) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	res := uc.DB.Delete(&models.Usuario{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el usuario"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type cambiarPasswordReq struct {
	NuevaPassword string `json:"nuevaPassword" binding:"required,min=6"`
}

// CambiarPassword rota la contraseña del usuario autenticado y levanta la
// marca de cambio obligatorio.
func (uc *UsuarioController) CambiarPassword(c *gin.Context) {
	var req cambiarPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La contraseña es obligatoria"})
		return
	}

	actual := middleware.UsuarioActual(c)
	hash, err := utils.HashPassword(req.NuevaPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cambiar la contraseña"})
		return
	}

	err = uc.DB.Model(&models.Usuario{}).
		Where("id = ?", actual.ID).
		Updates(map[string]interface{}{
			"password":              hash,
			"debe_cambiar_password": false,
		}).Error
	if err != nil {
		uc.Log.WithError(err).Error("no se pudo cambiar la contraseña")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cambiar la contraseña"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
