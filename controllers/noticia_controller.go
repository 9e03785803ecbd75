package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

type NoticiaController struct {
	DB *gorm.DB
}

func NewNoticiaController(db *gorm.DB) *NoticiaController {
	return &NoticiaController{DB: db}
}

func (nc *NoticiaController) Listar(c *gin.Context) {
	var noticias []models.Noticia
	if err := nc.DB.Order("fecha DESC").Find(&noticias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las noticias"})
		return
	}
	c.JSON(http.StatusOK, noticias)
}

type noticiaReq struct {
	Titulo    string `json:"titulo" binding:"required,min=1"`
	Contenido string `json:"contenido" binding:"required,min=1"`
	Categoria string `json:"categoria"`
	Publicado bool   `json:"publicado"`
}

func (nc *NoticiaController) Crear(c *gin.Context) {
	var req noticiaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	autor := middleware.UsuarioActual(c)
	noticia := models.Noticia{
		Titulo:    req.Titulo,
		Contenido: req.Contenido,
		Categoria: req.Categoria,
		Publicado: req.Publicado,
		AutorID:   autor.ID,
	}
	if err := nc.DB.Create(&noticia).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la noticia"})
		return
	}
	c.JSON(http.StatusCreated, noticia)
}

func (nc *NoticiaController) Obtener(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var noticia models.Noticia
	if err := nc.DB.First(&noticia, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Noticia no encontrada"})
		return
	}
	c.JSON(http.StatusOK, noticia)
}

func (nc *NoticiaController) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req noticiaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var noticia models.Noticia
	if err := nc.DB.First(&noticia, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Noticia no encontrada"})
		return
	}

	updates := map[string]interface{}{
		"titulo":    req.Titulo,
		"contenido": req.Contenido,
		"categoria": req.Categoria,
		"publicado": req.Publicado,
	}
	if err := nc.DB.Model(&noticia).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la noticia"})
		return
	}
	c.JSON(http.StatusOK, noticia)
}

func (nc *NoticiaController) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	res := nc.DB.Delete(&models.Noticia{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la noticia"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Noticia no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
