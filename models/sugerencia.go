package models

import "time"

type Sugerencia struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Contenido string    `gorm:"type:text;not null" json:"contenido"`
	AutorID   uint      `gorm:"not null" json:"autorId"`
	Fecha     time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Sugerencia) TableName() string {
	return "sugerencia"
}
