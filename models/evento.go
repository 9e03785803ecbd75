package models

import "time"

type Evento struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo      string    `gorm:"size:255;not null" json:"titulo"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	Fecha       time.Time `gorm:"not null" json:"fecha"`
	Publicado   bool      `gorm:"not null;default:false" json:"publicado"`
	AutorID     uint      `gorm:"not null" json:"autorId"`
}

func (Evento) TableName() string {
	return "evento"
}
