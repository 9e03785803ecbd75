package models

import "time"

type Queja struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo      string    `gorm:"size:255;not null" json:"titulo"`
	Descripcion string    `gorm:"type:text;not null" json:"descripcion"`
	UsuarioID   *uint     `json:"usuarioId"`
	Fecha       time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Queja) TableName() string {
	return "queja"
}
