package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type SugerenciaController struct {
	DB *gorm.DB
}

func NewSugerenciaController(db *gorm.DB) *SugerenciaController {
	return &SugerenciaController{DB: db}
}

type sugerenciaReq struct {
	Contenido string `json:"contenido" binding:"required,min=1"`
}

func (sc *SugerenciaController) Crear(c *gin.Context) {
	var req sugerenciaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	autor := middleware.UsuarioActual(c)
	sugerencia := models.Sugerencia{
		Contenido: req.Contenido,
		AutorID:   autor.ID,
	}
	if err := sc.DB.Create(&sugerencia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la sugerencia"})
		return
	}
	c.JSON(http.StatusCreated, sugerencia)
}

func (sc *SugerenciaController) Listar(c *gin.Context) {
	var sugerencias []models.Sugerencia
	if err := sc.DB.Order("fecha DESC").Find(&sugerencias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las sugerencias"})
		return
	}
	c.JSON(http.StatusOK, sugerencias)
}
