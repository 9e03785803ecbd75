package models

import "time"

type Regla struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Titulo      string    `gorm:"size:255;not null" json:"titulo"`
	Descripcion string    `gorm:"type:text;not null" json:"descripcion"`
	Fecha       time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Regla) TableName() string {
	return "regla"
}
