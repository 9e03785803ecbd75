package models

type Opcion struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PreguntaID uint   `gorm:"not null;index" json:"preguntaId"`
	Texto      string `gorm:"type:text;not null" json:"texto"`
}

func (Opcion) TableName() string {
	return "opcion"
}
