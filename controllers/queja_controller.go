package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type QuejaController struct {
	DB *gorm.DB
}

func NewQuejaController(db *gorm.DB) *QuejaController {
	return &QuejaController{DB: db}
}

type quejaReq struct {
	Titulo      string `json:"titulo" binding:"required,min=1"`
	Descripcion string `json:"descripcion" binding:"required,min=1"`
}

func (qc *QuejaController) Crear(c *gin.Context) {
	var req quejaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	autor := middleware.UsuarioActual(c)
	queja := models.Queja{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		UsuarioID:   &autor.ID,
	}
	if err := qc.DB.Create(&queja).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la queja"})
		return
	}
	c.JSON(http.StatusCreated, queja)
}

func (qc *QuejaController) Listar(c *gin.Context) {
	var quejas []models.Queja
	if err := qc.DB.Order("fecha DESC").Find(&quejas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las quejas"})
		return
	}
	c.JSON(http.StatusOK, quejas)
}

func (qc *QuejaController) Obtener(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var queja models.Queja
	if err := qc.DB.First(&queja, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Queja no encontrada"})
		return
	}
	c.JSON(http.StatusOK, queja)
}

func (qc *QuejaController) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req quejaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var queja models.Queja
	if err := qc.DB.First(&queja, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Queja no encontrada"})
		return
	}

	updates := map[string]interface{}{
		"titulo":      req.Titulo,
		"descripcion": req.Descripcion,
	}
	if err := qc.DB.Model(&queja).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la queja"})
		return
	}
	c.JSON(http.StatusOK, queja)
}

func (qc *QuejaController) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	res := qc.DB.Delete(&models.Queja{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la queja"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Queja no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
