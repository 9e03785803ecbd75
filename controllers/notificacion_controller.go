package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type NotificacionController struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewNotificacionController(db *gorm.DB, log *logrus.Logger) *NotificacionController {
	return &NotificacionController{DB: db, Log: log}
}

// Listar devuelve solo las notificaciones del usuario autenticado.
func (nc *NotificacionController) Listar(c *gin.Context) {
	usuario := middleware.UsuarioActual(c)

	var notificaciones []models.Notificacion
	err := nc.DB.Where("usuario_id = ?", usuario.ID).Order("fecha DESC").Find(&notificaciones).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las notificaciones"})
		return
	}
	c.JSON(http.StatusOK, notificaciones)
}

type notificacionReq struct {
	UsuarioID *uint  `json:"usuarioId"`
	Mensaje   string `json:"mensaje" binding:"required,min=1"`
}

// Crear envía una notificación a un usuario concreto o, sin usuarioId, a
// todos los usuarios del portal.
func (nc *NotificacionController) Crear(c *gin.Context) {
	var req notificacionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	if req.UsuarioID != nil {
		if err := nc.DB.First(&models.Usuario{}, *req.UsuarioID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		notificacion := models.Notificacion{UsuarioID: *req.UsuarioID, Mensaje: req.Mensaje}
		if err := nc.DB.Create(&notificacion).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la notificación"})
			return
		}
		c.JSON(http.StatusCreated, notificacion)
		return
	}

	var usuarioIDs []uint
	if err := nc.DB.Model(&models.Usuario{}).Pluck("id", &usuarioIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la notificación"})
		return
	}

	notificaciones := make([]models.Notificacion, 0, len(usuarioIDs))
	for _, id := range usuarioIDs {
		notificaciones = append(notificaciones, models.Notificacion{UsuarioID: id, Mensaje: req.Mensaje})
	}
	if len(notificaciones) > 0 {
		if err := nc.DB.Create(&notificaciones).Error; err != nil {
			nc.Log.WithError(err).Error("no se pudo difundir la notificación")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la notificación"})
			return
		}
	}
	c.JSON(http.StatusCreated, gin.H{"enviadas": len(notificaciones)})
}

// MarcarLeida marca como leída una notificación propia.
func (nc *NotificacionController) MarcarLeida(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var notificacion models.Notificacion
	if err := nc.DB.First(&notificacion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notificación no encontrada"})
		return
	}

	usuario := middleware.UsuarioActual(c)
	if notificacion.UsuarioID != usuario.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
		return
	}

	if err := nc.DB.Model(&notificacion).Update("leida", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la notificación"})
		return
	}
	c.JSON(http.StatusOK, notificacion)
}
