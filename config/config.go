package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
)

// Config agrupa toda la configuración del servidor. Se lee del entorno con
// prefijo PALONEGRO_ (PALONEGRO_DB_HOST, PALONEGRO_JWT_SECRET, ...).
type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix("palonegro")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "4000")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "palonegro")
	v.SetDefault("db.name", "palonegro")
	v.SetDefault("cors.origins", "http://localhost:3000")

	cfg := &Config{
		Port:        v.GetString("port"),
		DBHost:      v.GetString("db.host"),
		DBPort:      v.GetString("db.port"),
		DBUser:      v.GetString("db.user"),
		DBPassword:  v.GetString("db.password"),
		DBName:      v.GetString("db.name"),
		JWTSecret:   v.GetString("jwt.secret"),
		CORSOrigins: strings.Split(v.GetString("cors.origins"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("PALONEGRO_JWT_SECRET no está definido")
	}
	return cfg, nil
}

// ConnectDB abre la conexión a PostgreSQL y migra el esquema completo.
// Devuelve el handle para inyectarlo en controladores y servicios.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Bogota",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("no se pudo migrar el esquema: %w", err)
	}
	return db, nil
}

// Migrate ejecuta AutoMigrate para todas las entidades del portal.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Encuesta{},
		&models.Pregunta{},
		&models.Opcion{},
		&models.Participacion{},
		&models.Respuesta{},
		&models.Noticia{},
		&models.Comentario{},
		&models.Evento{},
		&models.Regla{},
		&models.Queja{},
		&models.Denuncia{},
		&models.Sugerencia{},
		&models.Transaccion{},
		&models.Notificacion{},
	)
}
