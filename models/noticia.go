package models

import "time"

type Noticia struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo    string    `gorm:"size:255;not null" json:"titulo"`
	Contenido string    `gorm:"type:text;not null" json:"contenido"`
	Categoria string    `gorm:"size:50" json:"categoria"`
	Publicado bool      `gorm:"not null;default:false" json:"publicado"`
	AutorID   uint      `gorm:"not null" json:"autorId"`
	Fecha     time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Noticia) TableName() string {
	return "noticia"
}
