package models

import "time"

// Participacion registra que un usuario ya envió sus respuestas a una
// encuesta. El índice único compuesto garantiza a nivel de almacenamiento
// que no puedan existir dos participaciones para el mismo par
// (encuesta, usuario), incluso ante envíos concurrentes.
type Participacion struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EncuestaID uint      `gorm:"column:encuesta_id;not null;uniqueIndex:idx_participacion_encuesta_usuario" json:"encuestaId"`
	UsuarioID  uint      `gorm:"column:usuario_id;not null;uniqueIndex:idx_participacion_encuesta_usuario" json:"usuarioId"`
	Fecha      time.Time `gorm:"column:fecha;autoCreateTime" json:"fecha"`

	Respuestas []Respuesta `gorm:"foreignKey:ParticipacionID" json:"respuestas"`
}

func (Participacion) TableName() string {
	return "participacion"
}
