package models

import "time"

type Notificacion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID uint      `gorm:"not null;index" json:"usuarioId"`
	Mensaje   string    `gorm:"type:text;not null" json:"mensaje"`
	Leida     bool      `gorm:"not null;default:false" json:"leida"`
	Fecha     time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Notificacion) TableName() string {
	return "notificacion"
}
