package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
	"github.com/palonegro-conectado/server/services"
	"github.com/palonegro-conectado/server/testutil"
)

func nuevoServicio(t *testing.T) (*services.EncuestaService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return services.NewEncuestaService(db, testutil.SilentLogger()), db
}

func crearParqueadero(t *testing.T, svc *services.EncuestaService) *models.Encuesta {
	t.Helper()
	encuesta, err := svc.Crear(services.NuevaEncuesta{
		Titulo: "Parqueadero",
		Activa: true,
		Preguntas: []services.NuevaPregunta{
			{Texto: "¿Permitir parqueo de visitantes?", Opciones: []string{"Sí", "No"}},
		},
	})
	require.NoError(t, err)
	return encuesta
}

func TestCrearEncuestaRoundTrip(t *testing.T) {
	svc, _ := nuevoServicio(t)

	creada, err := svc.Crear(services.NuevaEncuesta{
		Titulo: "Mejoras del salón comunal",
		Activa: true,
		Preguntas: []services.NuevaPregunta{
			{Texto: "¿Pintar la fachada?", Opciones: []string{"Sí", "No", "Me da igual"}},
			{Texto: "¿Comprar sillas nuevas?", Opciones: []string{"Sí", "No", "Me da igual"}},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, creada.ID)

	obtenida, err := svc.Obtener(creada.ID)
	require.NoError(t, err)

	assert.Equal(t, "Mejoras del salón comunal", obtenida.Titulo)
	assert.True(t, obtenida.Activa)
	require.Len(t, obtenida.Preguntas, 2)
	// Preguntas y opciones conservan el orden de creación.
	assert.Equal(t, "¿Pintar la fachada?", obtenida.Preguntas[0].Texto)
	assert.Equal(t, "¿Comprar sillas nuevas?", obtenida.Preguntas[1].Texto)
	for _, p := range obtenida.Preguntas {
		require.Len(t, p.Opciones, 3)
		assert.Equal(t, "Sí", p.Opciones[0].Texto)
		assert.Equal(t, "Me da igual", p.Opciones[2].Texto)
	}
}

func TestCrearEncuestaInvalida(t *testing.T) {
	svc, _ := nuevoServicio(t)

	casos := []services.NuevaEncuesta{
		{Titulo: "  ", Preguntas: []services.NuevaPregunta{{Texto: "x", Opciones: []string{"a"}}}},
		{Titulo: "Sin preguntas"},
		{Titulo: "Pregunta sin opciones", Preguntas: []services.NuevaPregunta{{Texto: "x"}}},
	}
	for _, caso := range casos {
		_, err := svc.Crear(caso)
		assert.ErrorIs(t, err, services.ErrEncuestaInvalida)
	}
}

func TestObtenerNoExistente(t *testing.T) {
	svc, _ := nuevoServicio(t)

	_, err := svc.Obtener(999)
	assert.ErrorIs(t, err, services.ErrEncuestaNoEncontrada)
}

func TestCambiarEstado(t *testing.T) {
	svc, _ := nuevoServicio(t)
	encuesta := crearParqueadero(t, svc)

	_, err := svc.CambiarEstado(encuesta.ID, false)
	require.NoError(t, err)

	obtenida, err := svc.Obtener(encuesta.ID)
	require.NoError(t, err)
	assert.False(t, obtenida.Activa)

	_, err = svc.CambiarEstado(999, true)
	assert.ErrorIs(t, err, services.ErrEncuestaNoEncontrada)
}

func TestParticipacionYResultados(t *testing.T) {
	svc, db := nuevoServicio(t)
	encuesta := crearParqueadero(t, svc)

	residenteA := testutil.CrearUsuario(t, db, "Ana", "ana@palonegro.co", "clave123", models.RolResidente)
	residenteB := testutil.CrearUsuario(t, db, "Blas", "blas@palonegro.co", "clave123", models.RolResidente)

	pregunta := encuesta.Preguntas[0]
	si := pregunta.Opciones[0]
	no := pregunta.Opciones[1]

	ya, err := svc.YaParticipo(encuesta.ID, residenteA.ID)
	require.NoError(t, err)
	assert.False(t, ya)

	participacion, err := svc.Responder(encuesta.ID, residenteA.ID, map[uint]uint{pregunta.ID: si.ID})
	require.NoError(t, err)
	require.Len(t, participacion.Respuestas, 1)

	// Estable bajo llamadas repetidas.
	for i := 0; i < 3; i++ {
		ya, err = svc.YaParticipo(encuesta.ID, residenteA.ID)
		require.NoError(t, err)
		assert.True(t, ya)
	}

	resultados, err := svc.Resultados(encuesta.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint]map[uint]int{pregunta.ID: {si.ID: 1}}, resultados)

	// Segundo intento del mismo residente: rechazado, el conteo no cambia.
	_, err = svc.Responder(encuesta.ID, residenteA.ID, map[uint]uint{pregunta.ID: no.ID})
	assert.ErrorIs(t, err, services.ErrParticipacionDuplicada)

	_, err = svc.Responder(encuesta.ID, residenteB.ID, map[uint]uint{pregunta.ID: no.ID})
	require.NoError(t, err)

	resultados, err = svc.Resultados(encuesta.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint]map[uint]int{pregunta.ID: {si.ID: 1, no.ID: 1}}, resultados)
}

func TestResponderRespuestasInvalidas(t *testing.T) {
	svc, db := nuevoServicio(t)
	encuesta := crearParqueadero(t, svc)
	otra := func() *models.Encuesta {
		e, err := svc.Crear(services.NuevaEncuesta{
			Titulo:    "Otra",
			Preguntas: []services.NuevaPregunta{{Texto: "¿Otra cosa?", Opciones: []string{"A", "B"}}},
		})
		require.NoError(t, err)
		return e
	}()

	residente := testutil.CrearUsuario(t, db, "Ana", "ana@palonegro.co", "clave123", models.RolResidente)

	pregunta := encuesta.Preguntas[0]
	preguntaAjena := otra.Preguntas[0]
	opcionAjena := preguntaAjena.Opciones[0]

	// Pregunta de otra encuesta.
	_, err := svc.Responder(encuesta.ID, residente.ID, map[uint]uint{preguntaAjena.ID: opcionAjena.ID})
	assert.ErrorIs(t, err, services.ErrRespuestasInvalidas)

	// Opción de otra pregunta.
	_, err = svc.Responder(encuesta.ID, residente.ID, map[uint]uint{pregunta.ID: opcionAjena.ID})
	assert.ErrorIs(t, err, services.ErrRespuestasInvalidas)

	// Sin respuestas.
	_, err = svc.Responder(encuesta.ID, residente.ID, map[uint]uint{})
	assert.ErrorIs(t, err, services.ErrRespuestasInvalidas)

	// Nada quedó escrito.
	ya, err := svc.YaParticipo(encuesta.ID, residente.ID)
	require.NoError(t, err)
	assert.False(t, ya)
}

func TestResultadosSoloDeLaEncuesta(t *testing.T) {
	svc, db := nuevoServicio(t)
	parqueadero := crearParqueadero(t, svc)
	mascotas, err := svc.Crear(services.NuevaEncuesta{
		Titulo:    "Mascotas",
		Activa:    true,
		Preguntas: []services.NuevaPregunta{{Texto: "¿Permitir mascotas en zonas comunes?", Opciones: []string{"Sí", "No"}}},
	})
	require.NoError(t, err)

	residente := testutil.CrearUsuario(t, db, "Ana", "ana@palonegro.co", "clave123", models.RolResidente)

	pParqueadero := parqueadero.Preguntas[0]
	pMascotas := mascotas.Preguntas[0]

	_, err = svc.Responder(parqueadero.ID, residente.ID, map[uint]uint{pParqueadero.ID: pParqueadero.Opciones[0].ID})
	require.NoError(t, err)
	_, err = svc.Responder(mascotas.ID, residente.ID, map[uint]uint{pMascotas.ID: pMascotas.Opciones[1].ID})
	require.NoError(t, err)

	resultados, err := svc.Resultados(parqueadero.ID)
	require.NoError(t, err)
	require.Len(t, resultados, 1)
	// Solo preguntas de la encuesta consultada, solo opciones de esas preguntas.
	_, ok := resultados[pMascotas.ID]
	assert.False(t, ok)
	assert.Equal(t, map[uint]int{pParqueadero.Opciones[0].ID: 1}, resultados[pParqueadero.ID])
}

func TestResultadosSinParticipaciones(t *testing.T) {
	svc, _ := nuevoServicio(t)
	encuesta := crearParqueadero(t, svc)

	resultados, err := svc.Resultados(encuesta.ID)
	require.NoError(t, err)
	assert.Empty(t, resultados)

	_, err = svc.Resultados(999)
	assert.ErrorIs(t, err, services.ErrEncuestaNoEncontrada)
}

func TestEliminarCascada(t *testing.T) {
	svc, db := nuevoServicio(t)
	encuesta := crearParqueadero(t, svc)

	residente := testutil.CrearUsuario(t, db, "Ana", "ana@palonegro.co", "clave123", models.RolResidente)
	pregunta := encuesta.Preguntas[0]
	_, err := svc.Responder(encuesta.ID, residente.ID, map[uint]uint{pregunta.ID: pregunta.Opciones[0].ID})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(encuesta.ID))

	_, err = svc.Obtener(encuesta.ID)
	assert.ErrorIs(t, err, services.ErrEncuestaNoEncontrada)
	_, err = svc.Resultados(encuesta.ID)
	assert.ErrorIs(t, err, services.ErrEncuestaNoEncontrada)

	for _, modelo := range []interface{}{
		&models.Pregunta{}, &models.Opcion{}, &models.Participacion{}, &models.Respuesta{},
	} {
		var count int64
		require.NoError(t, db.Model(modelo).Count(&count).Error)
		assert.Zero(t, count)
	}

	assert.ErrorIs(t, svc.Eliminar(encuesta.ID), services.ErrEncuestaNoEncontrada)
}

func TestIndiceUnicoDeParticipacion(t *testing.T) {
	// El índice compuesto es la defensa contra el doble voto concurrente:
	// aunque dos envíos pasen la verificación previa, el segundo insert falla.
	svc, db := nuevoServicio(t)
	encuesta := crearParqueadero(t, svc)
	residente := testutil.CrearUsuario(t, db, "Ana", "ana@palonegro.co", "clave123", models.RolResidente)

	require.NoError(t, db.Create(&models.Participacion{
		EncuestaID: encuesta.ID,
		UsuarioID:  residente.ID,
	}).Error)

	err := db.Create(&models.Participacion{
		EncuestaID: encuesta.ID,
		UsuarioID:  residente.ID,
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
