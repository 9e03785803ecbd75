package models

import "time"

type Denuncia struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Contenido string    `gorm:"type:text;not null" json:"contenido"`
	Estado    string    `gorm:"size:20;default:'pendiente'" json:"estado"`
	AutorID   uint      `gorm:"not null" json:"autorId"`
	Fecha     time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Denuncia) TableName() string {
	return "denuncia"
}
