package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
)

var (
	ErrEncuestaNoEncontrada   = errors.New("encuesta no encontrada")
	ErrEncuestaInvalida       = errors.New("la encuesta debe tener título y al menos una pregunta con opciones")
	ErrParticipacionDuplicada = errors.New("el usuario ya participó en esta encuesta")
	ErrRespuestasInvalidas    = errors.New("las respuestas no corresponden a las preguntas de la encuesta")
)

// EncuestaService implementa el núcleo de encuestas: definición, participación
// única por usuario y conteo de resultados.
type EncuestaService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewEncuestaService(db *gorm.DB, log *logrus.Logger) *EncuestaService {
	return &EncuestaService{db: db, log: log}
}

type NuevaPregunta struct {
	Texto    string   `json:"texto" binding:"required,min=1"`
	Opciones []string `json:"opciones" binding:"required,min=1,dive,min=1"`
}

type NuevaEncuesta struct {
	Titulo    string          `json:"titulo" binding:"required,min=1"`
	Activa    bool            `json:"activa"`
	Preguntas []NuevaPregunta `json:"preguntas" binding:"required,min=1,dive"`
}

// Crear persiste la encuesta con sus preguntas y opciones en una sola
// transacción: nunca queda visible una encuesta a medio construir.
func (s *EncuestaService) Crear(in NuevaEncuesta) (*models.Encuesta, error) {
	if strings.TrimSpace(in.Titulo) == "" || len(in.Preguntas) == 0 {
		return nil, ErrEncuestaInvalida
	}
	for _, p := range in.Preguntas {
		if strings.TrimSpace(p.Texto) == "" || len(p.Opciones) == 0 {
			return nil, ErrEncuestaInvalida
		}
	}

	encuesta := models.Encuesta{
		Titulo: in.Titulo,
		Activa: in.Activa,
	}
	for _, p := range in.Preguntas {
		pregunta := models.Pregunta{Texto: p.Texto}
		for _, o := range p.Opciones {
			pregunta.Opciones = append(pregunta.Opciones, models.Opcion{Texto: o})
		}
		encuesta.Preguntas = append(encuesta.Preguntas, pregunta)
	}

	// Create con asociaciones anidadas corre dentro de una transacción de gorm.
	if err := s.db.Create(&encuesta).Error; err != nil {
		s.log.WithError(err).Error("no se pudo crear la encuesta")
		return nil, err
	}
	return &encuesta, nil
}

// Listar devuelve todas las encuestas con preguntas y opciones anidadas,
// en orden de creación.
func (s *EncuestaService) Listar() ([]models.Encuesta, error) {
	var encuestas []models.Encuesta
	err := s.db.
		Order("id ASC").
		Preload("Preguntas", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Preguntas.Opciones", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Find(&encuestas).Error
	if err != nil {
		return nil, err
	}
	return encuestas, nil
}

func (s *EncuestaService) Obtener(id uint) (*models.Encuesta, error) {
	var encuesta models.Encuesta
	err := s.db.
		Preload("Preguntas", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Preguntas.Opciones", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&encuesta, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEncuestaNoEncontrada
	}
	if err != nil {
		return nil, err
	}
	return &encuesta, nil
}

// CambiarEstado activa o desactiva la encuesta.
func (s *EncuestaService) CambiarEstado(id uint, activa bool) (*models.Encuesta, error) {
	var encuesta models.Encuesta
	if err := s.db.First(&encuesta, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncuestaNoEncontrada
		}
		return nil, err
	}

	if err := s.db.Model(&encuesta).Update("activa", activa).Error; err != nil {
		return nil, err
	}
	return &encuesta, nil
}

// Eliminar borra la encuesta y, en cascada, sus preguntas, opciones,
// participaciones y respuestas.
func (s *EncuestaService) Eliminar(id uint) error {
	var encuesta models.Encuesta
	if err := s.db.First(&encuesta, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEncuestaNoEncontrada
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var preguntaIDs []uint
		if err := tx.Model(&models.Pregunta{}).
			Where("encuesta_id = ?", id).
			Pluck("id", &preguntaIDs).Error; err != nil {
			return err
		}

		var participacionIDs []uint
		if err := tx.Model(&models.Participacion{}).
			Where("encuesta_id = ?", id).
			Pluck("id", &participacionIDs).Error; err != nil {
			return err
		}

		if len(participacionIDs) > 0 {
			if err := tx.Where("participacion_id IN ?", participacionIDs).
				Delete(&models.Respuesta{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("encuesta_id = ?", id).Delete(&models.Participacion{}).Error; err != nil {
			return err
		}
		if len(preguntaIDs) > 0 {
			if err := tx.Where("pregunta_id IN ?", preguntaIDs).Delete(&models.Opcion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("encuesta_id = ?", id).Delete(&models.Pregunta{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Encuesta{}, id).Error
	})
}

// YaParticipo reporta si el usuario ya envió respuestas a la encuesta.
func (s *EncuestaService) YaParticipo(encuestaID, usuarioID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Participacion{}).
		Where("encuesta_id = ? AND usuario_id = ?", encuestaID, usuarioID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Responder registra la participación del usuario con una respuesta por
// pregunta. Valida que cada pregunta pertenezca a la encuesta y cada opción a
// su pregunta antes de escribir nada; la participación y sus respuestas se
// insertan como una unidad atómica. El índice único de participacion convierte
// un envío concurrente duplicado en ErrParticipacionDuplicada en lugar de un
// doble voto.
func (s *EncuestaService) Responder(encuestaID, usuarioID uint, respuestas map[uint]uint) (*models.Participacion, error) {
	encuesta, err := s.Obtener(encuestaID)
	if err != nil {
		return nil, err
	}

	if len(respuestas) == 0 {
		return nil, ErrRespuestasInvalidas
	}

	ya, err := s.YaParticipo(encuestaID, usuarioID)
	if err != nil {
		return nil, err
	}
	if ya {
		return nil, ErrParticipacionDuplicada
	}

	opcionesPorPregunta := make(map[uint]map[uint]bool, len(encuesta.Preguntas))
	for _, p := range encuesta.Preguntas {
		opciones := make(map[uint]bool, len(p.Opciones))
		for _, o := range p.Opciones {
			opciones[o.ID] = true
		}
		opcionesPorPregunta[p.ID] = opciones
	}
	for preguntaID, opcionID := range respuestas {
		opciones, ok := opcionesPorPregunta[preguntaID]
		if !ok || !opciones[opcionID] {
			return nil, ErrRespuestasInvalidas
		}
	}

	participacion := models.Participacion{
		EncuestaID: encuestaID,
		UsuarioID:  usuarioID,
	}
	for preguntaID, opcionID := range respuestas {
		participacion.Respuestas = append(participacion.Respuestas, models.Respuesta{
			PreguntaID: preguntaID,
			OpcionID:   opcionID,
		})
	}

	if err := s.db.Create(&participacion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrParticipacionDuplicada
		}
		s.log.WithError(err).WithFields(logrus.Fields{
			"encuesta": encuestaID,
			"usuario":  usuarioID,
		}).Error("no se pudo registrar la participación")
		return nil, err
	}
	return &participacion, nil
}

// Resultados cuenta los votos por opción agrupados por pregunta. Una encuesta
// sin participaciones devuelve un mapa vacío, no un error.
func (s *EncuestaService) Resultados(encuestaID uint) (map[uint]map[uint]int, error) {
	if err := s.db.First(&models.Encuesta{}, encuestaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEncuestaNoEncontrada
		}
		return nil, err
	}

	var respuestas []models.Respuesta
	err := s.db.
		Joins("JOIN participacion ON participacion.id = respuesta.participacion_id").
		Where("participacion.encuesta_id = ?", encuestaID).
		Find(&respuestas).Error
	if err != nil {
		return nil, err
	}

	resultados := make(map[uint]map[uint]int)
	for _, r := range respuestas {
		if resultados[r.PreguntaID] == nil {
			resultados[r.PreguntaID] = make(map[uint]int)
		}
		resultados[r.PreguntaID][r.OpcionID]++
	}
	return resultados, nil
}
