package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type DenunciaController struct {
	DB *gorm.DB
}

func NewDenunciaController(db *gorm.DB) *DenunciaController {
	return &DenunciaController{DB: db}
}

type denunciaReq struct {
	Contenido string `json:"contenido" binding:"required,min=1"`
	Estado    string `json:"estado"`
}

func (dc *DenunciaController) Crear(c *gin.Context) {
	var req denunciaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	autor := middleware.UsuarioActual(c)
	denuncia := models.Denuncia{
		Contenido: req.Contenido,
		Estado:    req.Estado,
		AutorID:   autor.ID,
	}
	if denuncia.Estado == "" {
		denuncia.Estado = "pendiente"
	}
	if err := dc.DB.Create(&denuncia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la denuncia"})
		return
	}
	c.JSON(http.StatusCreated, denuncia)
}

func (dc *DenunciaController) Listar(c *gin.Context) {
	var denuncias []models.Denuncia
	if err := dc.DB.Order("fecha DESC").Find(&denuncias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las denuncias"})
		return
	}
	c.JSON(http.StatusOK, denuncias)
}
