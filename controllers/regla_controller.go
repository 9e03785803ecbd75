package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
)

type ReglaController struct {
	DB *gorm.DB
}

func NewReglaController(db *gorm.DB) *ReglaController {
	return &ReglaController{DB: db}
}

func (rc *ReglaController) Listar(c *gin.Context) {
	var reglas []models.Regla
	if err := rc.DB.Order("fecha DESC").Find(&reglas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las reglas"})
		return
	}
	c.JSON(http.StatusOK, reglas)
}

type reglaReq struct {
	Titulo      string `json:"titulo" binding:"required,min=1"`
	Descripcion string `json:"descripcion" binding:"required,min=1"`
}

func (rc *ReglaController) Crear(c *gin.Context) {
	var req reglaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	regla := models.Regla{Titulo: req.Titulo, Descripcion: req.Descripcion}
	if err := rc.DB.Create(&regla).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la regla"})
		return
	}
	c.JSON(http.StatusCreated, regla)
}

func (rc *ReglaController) Obtener(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var regla models.Regla
	if err := rc.DB.First(&regla, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Regla no encontrada"})
		return
	}
	c.JSON(http.StatusOK, regla)
}

func (rc *ReglaController) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req reglaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var regla models.Regla
	if err := rc.DB.First(&regla, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Regla no encontrada"})
		return
	}

	updates := map[string]interface{}{
		"titulo":      req.Titulo,
		"descripcion": req.Descripcion,
	}
	if err := rc.DB.Model(&regla).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la regla"})
		return
	}
	c.JSON(http.StatusOK, regla)
}

func (rc *ReglaController) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	res := rc.DB.Delete(&models.Regla{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la regla"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Regla no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
