package models

import "time"

// Rol es el rol asignado a una cuenta del portal.
type Rol string

const (
	RolAdministrador Rol = "Administrador"
	RolResidente     Rol = "Residente"
	RolTesorero      Rol = "Tesorero"
)

// RolValido reporta si el valor recibido corresponde a un rol conocido.
func RolValido(r Rol) bool {
	switch r {
	case RolAdministrador, RolResidente, RolTesorero:
		return true
	}
	return false
}

type Usuario struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre              string    `gorm:"size:100;not null" json:"nombre"`
	Email               string    `gorm:"size:100;unique;not null" json:"email"`
	Password            string    `gorm:"size:255;not null" json:"-"` // hash bcrypt, nunca en JSON
	Rol                 Rol       `gorm:"size:20;not null" json:"rol"`
	DebeCambiarPassword bool      `gorm:"not null;default:false" json:"debeCambiarPassword"`
	FechaCreacion       time.Time `gorm:"autoCreateTime" json:"fechaCreacion"`
}

func (Usuario) TableName() string {
	return "usuario"
}
