package models

type Respuesta struct {
	ID              uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ParticipacionID uint `gorm:"not null;index" json:"participacionId"`
	PreguntaID      uint `gorm:"not null;index" json:"preguntaId"`
	OpcionID        uint `gorm:"not null" json:"opcionId"`
}

func (Respuesta) TableName() string {
	return "respuesta"
}
