package models

type Pregunta struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EncuestaID uint   `gorm:"not null;index" json:"encuestaId"`
	Texto      string `gorm:"type:text;not null" json:"texto"`

	Opciones []Opcion `gorm:"foreignKey:PreguntaID" json:"opciones"`
}

func (Pregunta) TableName() string {
	return "pregunta"
}
