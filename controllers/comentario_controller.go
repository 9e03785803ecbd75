package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type ComentarioController struct {
	DB *gorm.DB
}

func NewComentarioController(db *gorm.DB) *ComentarioController {
	return &ComentarioController{DB: db}
}

type comentarioReq struct {
	Contenido string `json:"contenido" binding:"required,min=1"`
}

func (cc *ComentarioController) Crear(c *gin.Context) {
	noticiaID, err := strconv.Atoi(c.Param("noticiaId"))
	if err != nil || noticiaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de la noticia inválido"})
		return
	}

	var req comentarioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	if err := cc.DB.First(&models.Noticia{}, noticiaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Noticia no encontrada"})
		return
	}

	autor := middleware.UsuarioActual(c)
	comentario := models.Comentario{
		NoticiaID: uint(noticiaID),
		AutorID:   autor.ID,
		Contenido: req.Contenido,
	}
	if err := cc.DB.Create(&comentario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el comentario"})
		return
	}
	c.JSON(http.StatusCreated, comentario)
}

func (cc *ComentarioController) Listar(c *gin.Context) {
	noticiaID, err := strconv.Atoi(c.Param("noticiaId"))
	if err != nil || noticiaID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de la noticia inválido"})
		return
	}

	var comentarios []models.Comentario
	if err := cc.DB.Where("noticia_id = ?", noticiaID).Order("fecha ASC").Find(&comentarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar los comentarios"})
		return
	}
	c.JSON(http.StatusOK, comentarios)
}
