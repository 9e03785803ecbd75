package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/services"
)

// EncuestaController expone el subsistema de encuestas sobre HTTP. Toda la
// lógica vive en services.EncuestaService; aquí solo se traducen payloads y
// errores.
type EncuestaController struct {
	Servicio *services.EncuestaService
	Log      *logrus.Logger
}

func NewEncuestaController(servicio *services.EncuestaService, log *logrus.Logger) *EncuestaController {
	return &EncuestaController{Servicio: servicio, Log: log}
}

func (ec *EncuestaController) abortarConError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEncuestaNoEncontrada):
		c.JSON(http.StatusNotFound, gin.H{"error": "Encuesta no encontrada"})
	case errors.Is(err, services.ErrParticipacionDuplicada):
		c.JSON(http.StatusConflict, gin.H{"error": "Ya participaste en esta encuesta"})
	case errors.Is(err, services.ErrRespuestasInvalidas):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Las respuestas no corresponden a la encuesta"})
	case errors.Is(err, services.ErrEncuestaInvalida):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de la encuesta inválidos"})
	default:
		ec.Log.WithError(err).Error("fallo en el subsistema de encuestas")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
	}
}

func encuestaID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de la encuesta inválido"})
		return 0, false
	}
	return uint(id), true
}

func (ec *EncuestaController) Listar(c *gin.Context) {
	encuestas, err := ec.Servicio.Listar()
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusOK, encuestas)
}

func (ec *EncuestaController) Crear(c *gin.Context) {
	var req services.NuevaEncuesta
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de la encuesta inválidos"})
		return
	}

	encuesta, err := ec.Servicio.Crear(req)
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusCreated, encuesta)
}

func (ec *EncuestaController) Obtener(c *gin.Context) {
	id, ok := encuestaID(c)
	if !ok {
		return
	}

	encuesta, err := ec.Servicio.Obtener(id)
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusOK, encuesta)
}

type cambiarEstadoReq struct {
	Activa *bool `json:"activa" binding:"required"`
}

func (ec *EncuestaController) CambiarEstado(c *gin.Context) {
	id, ok := encuestaID(c)
	if !ok {
		return
	}

	var req cambiarEstadoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	encuesta, err := ec.Servicio.CambiarEstado(id, *req.Activa)
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusOK, encuesta)
}

func (ec *EncuestaController) Eliminar(c *gin.Context) {
	id, ok := encuestaID(c)
	if !ok {
		return
	}

	if err := ec.Servicio.Eliminar(id); err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Encuesta eliminada correctamente"})
}

type responderReq struct {
	Respuestas map[uint]uint `json:"respuestas" binding:"required"`
}

func (ec *EncuestaController) Responder(c *gin.Context) {
	id, ok := encuestaID(c)
	if !ok {
		return
	}

	var req responderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	usuario := middleware.UsuarioActual(c)
	participacion, err := ec.Servicio.Responder(id, usuario.ID, req.Respuestas)
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusCreated, participacion)
}

func (ec *EncuestaController) Resultados(c *gin.Context) {
	id, ok := encuestaID(c)
	if !ok {
		return
	}

	resultados, err := ec.Servicio.Resultados(id)
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusOK, resultados)
}

func (ec *EncuestaController) Participacion(c *gin.Context) {
	id, ok := encuestaID(c)
	if !ok {
		return
	}

	usuario := middleware.UsuarioActual(c)
	ya, err := ec.Servicio.YaParticipo(id, usuario.ID)
	if err != nil {
		ec.abortarConError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"yaParticipo": ya})
}
