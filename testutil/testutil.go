// Package testutil provisiona una base de datos en memoria y un router
// completo para las pruebas del portal.
package testutil

import (
	"fmt"
	"io"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/config"
	"github.com/palonegro-conectado/server/models"
	"github.com/palonegro-conectado/server/routes"
	"github.com/palonegro-conectado/server/utils"
)

// TestSecret firma los JWT emitidos durante las pruebas.
const TestSecret = "secreto-de-prueba"

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestDB abre una base SQLite en memoria con el esquema completo migrado.
// Cada llamada crea una base independiente.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Nombre único por prueba: cache=shared mantiene viva la base entre las
	// conexiones del pool de gorm.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("no se pudo abrir la base de pruebas: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("no se pudo migrar el esquema de pruebas: %v", err)
	}
	return db
}

// SilentLogger descarta toda la salida de log durante las pruebas.
func SilentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewRouter arma el router completo del portal contra una base en memoria.
func NewRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := NewTestDB(t)
	cfg := &config.Config{JWTSecret: TestSecret}

	r := gin.New()
	routes.SetupRoutes(r, db, cfg, SilentLogger())
	return r, db
}

// CrearUsuario inserta un usuario con la contraseña ya hasheada.
func CrearUsuario(t *testing.T, db *gorm.DB, nombre, email, password string, rol models.Rol) models.Usuario {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("no se pudo hashear la contraseña: %v", err)
	}

	usuario := models.Usuario{
		Nombre:   nombre,
		Email:    email,
		Password: hash,
		Rol:      rol,
	}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("no se pudo crear el usuario de prueba: %v", err)
	}
	return usuario
}

// TokenPara emite un JWT válido para el usuario dado.
func TokenPara(t *testing.T, usuario models.Usuario) string {
	t.Helper()

	token, err := utils.GenerarToken([]byte(TestSecret), usuario.ID, usuario.Rol)
	if err != nil {
		t.Fatalf("no se pudo generar el token de prueba: %v", err)
	}
	return token
}
