package models

import "time"

type Comentario struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NoticiaID uint      `gorm:"not null;index" json:"noticiaId"`
	AutorID   uint      `gorm:"not null" json:"autorId"`
	Contenido string    `gorm:"type:text;not null" json:"contenido"`
	Fecha     time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Comentario) TableName() string {
	return "comentario"
}
