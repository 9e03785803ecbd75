package models

import "time"

// Transaccion es un movimiento de tesorería. Tipo es "ingreso" o "egreso";
// el comprobante es una referencia libre al soporte físico o digital.
type Transaccion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Tipo        string    `gorm:"size:20;not null" json:"tipo"`
	Categoria   string    `gorm:"size:50" json:"categoria"`
	Monto       float64   `gorm:"not null" json:"monto"`
	Descripcion string    `gorm:"type:text" json:"descripcion"`
	Comprobante string    `gorm:"size:255" json:"comprobante"`
	TesoreroID  uint      `gorm:"not null" json:"tesoreroId"`
	Fecha       time.Time `gorm:"autoCreateTime" json:"fecha"`
}

func (Transaccion) TableName() string {
	return "transaccion"
}
