package models

import "time"

type Encuesta struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Titulo        string    `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Activa        bool      `gorm:"column:activa;not null;default:false" json:"activa"`
	FechaCreacion time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fechaCreacion"`

	Preguntas []Pregunta `gorm:"foreignKey:EncuestaID" json:"preguntas"`
}

func (Encuesta) TableName() string {
	return "encuesta"
}
