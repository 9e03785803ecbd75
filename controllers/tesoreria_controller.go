package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/models"
)

// TesoreriaController maneja los movimientos de tesorería. Todas sus rutas
// quedan restringidas al rol Tesorero por la tabla de capacidades.
type TesoreriaController struct {
	DB *gorm.DB
}

func NewTesoreriaController(db *gorm.DB) *TesoreriaController {
	return &TesoreriaController{DB: db}
}

func (tc *TesoreriaController) Listar(c *gin.Context) {
	var transacciones []models.Transaccion
	if err := tc.DB.Order("fecha DESC").Find(&transacciones).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron cargar las transacciones"})
		return
	}
	c.JSON(http.StatusOK, transacciones)
}

type transaccionReq struct {
	Tipo        string  `json:"tipo" binding:"required,oneof=ingreso egreso"`
	Categoria   string  `json:"categoria"`
	Monto       float64 `json:"monto" binding:"required,gt=0"`
	Descripcion string  `json:"descripcion"`
	Comprobante string  `json:"comprobante"`
}

func (tc *TesoreriaController) Crear(c *gin.Context) {
	var req transaccionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	tesorero := middleware.UsuarioActual(c)
	transaccion := models.Transaccion{
		Tipo:        req.Tipo,
		Categoria:   req.Categoria,
		Monto:       req.Monto,
		Descripcion: req.Descripcion,
		Comprobante: req.Comprobante,
		TesoreroID:  tesorero.ID,
	}
	if err := tc.DB.Create(&transaccion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar la transacción"})
		return
	}
	c.JSON(http.StatusCreated, transaccion)
}

func (tc *TesoreriaController) Obtener(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var transaccion models.Transaccion
	if err := tc.DB.First(&transaccion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	c.JSON(http.StatusOK, transaccion)
}

func (tc *TesoreriaController) Actualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	var req transaccionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var transaccion models.Transaccion
	if err := tc.DB.First(&transaccion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}

	updates := map[string]interface{}{
		"tipo":        req.Tipo,
		"categoria":   req.Categoria,
		"monto":       req.Monto,
		"descripcion": req.Descripcion,
		"comprobante": req.Comprobante,
	}
	if err := tc.DB.Model(&transaccion).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la transacción"})
		return
	}
	c.JSON(http.StatusOK, transaccion)
}

func (tc *TesoreriaController) Eliminar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	res := tc.DB.Delete(&models.Transaccion{}, id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la transacción"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
