package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type EventoController struct {
	DB *gorm.DB
}

func NewEventoController(db *gorm.DB) *EventoController {
	return &EventoController{DB: db}
}

func (ec *EventoController) Listar(c *gin.Context) {
	var eventos []models.Evento
	if err := ec.DB.Order("fecha ASC").Find(&eventos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los eventos"})
		return
	}
	c.JSON(http.StatusOK, eventos)
}

type eventoReq struct {
	Titulo      string    `json:"titulo" binding:"required,min=1"`
	Descripcion string    `json:"descripcion"`
	Fecha       time.Time `json:"fecha" binding:"required"`
	Publicado   bool      `json:"publicado"`
}

func (ec *EventoController) Crear(c *gin.Context) {
	var req eventoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	autor := middleware.UsuarioActual(c)
	evento := models.Evento{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Fecha:       req.Fecha,
		Publicado:   req.Publicado,
		AutorID:     autor.ID,
	}
	if err := ec.DB.Create(&evento).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el evento"})
		return
	}
	c.JSON(http.StatusCreated, evento)
}

func (ec *EventoController) Obtener(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var evento models.Evento
	if err := ec.DB.First(&evento, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, evento)
}

func (ec *EventoController) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req eventoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var evento models.Evento
	if err := ec.DB.First(&evento, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evento no encontrado"})
		return
	}

	updates := map[string]interface{}{
		"titulo":      req.Titulo,
		"descripcion": req.Descripcion,
		"fecha":       req.Fecha,
		"publicado":   req.Publicado,
	}
	if err := ec.DB.Model(&evento).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el evento"})
		return
	}
	c.JSON(http.StatusOK, evento)
}

func (ec *EventoController) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	res := ec.DB.Delete(&models.Evento{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el evento"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
