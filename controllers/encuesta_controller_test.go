package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/models"
	"github.com/palonegro-conectado/server/testutil"
)

func crearEncuestaHTTP(t *testing.T, r *gin.Engine, tokenAdmin string) models.Encuesta {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/encuestas", tokenAdmin, gin.H{
		"titulo": "Parqueadero",
		"activa": true,
		"preguntas": []gin.H{
			{"texto": "¿Permitir parqueo de visitantes?", "opciones": []string{"Sí", "No"}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var encuesta models.Encuesta
	decode(t, w, &encuesta)
	require.Len(t, encuesta.Preguntas, 1)
	require.Len(t, encuesta.Preguntas[0].Opciones, 2)
	return encuesta
}

func seedEncuestas(t *testing.T, db *gorm.DB) (admin, residente, tesorero models.Usuario) {
	t.Helper()
	admin = testutil.CrearUsuario(t, db, "Aurora", "admin@palonegro.co", "clave123", models.RolAdministrador)
	residente = testutil.CrearUsuario(t, db, "Ana", "ana@palonegro.co", "clave123", models.RolResidente)
	tesorero = testutil.CrearUsuario(t, db, "Tomás", "tesorero@palonegro.co", "clave123", models.RolTesorero)
	return admin, residente, tesorero
}

func TestEncuestasRequierenToken(t *testing.T) {
	r, _ := testutil.NewRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/encuestas", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEncuestasControlDeRoles(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, residente, tesorero := seedEncuestas(t, db)

	// Crear es exclusivo del Administrador.
	w := doJSON(t, r, http.MethodPost, "/api/encuestas", testutil.TokenPara(t, residente), gin.H{
		"titulo": "x", "preguntas": []gin.H{{"texto": "p", "opciones": []string{"a"}}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// El Tesorero no consulta encuestas.
	w = doJSON(t, r, http.MethodGet, "/api/encuestas", testutil.TokenPara(t, tesorero), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFlujoCompletoDeEncuesta(t *testing.T) {
	r, db := testutil.NewRouter(t)
	admin, residenteA, _ := seedEncuestas(t, db)
	residenteB := testutil.CrearUsuario(t, db, "Blas", "blas@palonegro.co", "clave123", models.RolResidente)

	tokenAdmin := testutil.TokenPara(t, admin)
	tokenA := testutil.TokenPara(t, residenteA)
	tokenB := testutil.TokenPara(t, residenteB)

	encuesta := crearEncuestaHTTP(t, r, tokenAdmin)
	pregunta := encuesta.Preguntas[0]
	si := pregunta.Opciones[0]
	no := pregunta.Opciones[1]

	base := fmt.Sprintf("/api/encuestas/%d", encuesta.ID)

	// Antes de votar: sin participación registrada.
	w := doJSON(t, r, http.MethodGet, base+"/participacion", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"yaParticipo":false}`, w.Body.String())

	// Residente A vota "Sí".
	w = doJSON(t, r, http.MethodPost, base+"/responder", tokenA, gin.H{
		"respuestas": map[string]uint{fmt.Sprint(pregunta.ID): si.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, base+"/participacion", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"yaParticipo":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, base+"/resultados", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"%d":{"%d":1}}`, pregunta.ID, si.ID), w.Body.String())

	// Segundo intento del mismo residente: 409.
	w = doJSON(t, r, http.MethodPost, base+"/responder", tokenA, gin.H{
		"respuestas": map[string]uint{fmt.Sprint(pregunta.ID): no.ID},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Residente B vota "No".
	w = doJSON(t, r, http.MethodPost, base+"/responder", tokenB, gin.H{
		"respuestas": map[string]uint{fmt.Sprint(pregunta.ID): no.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, base+"/resultados", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"%d":{"%d":1,"%d":1}}`, pregunta.ID, si.ID, no.ID), w.Body.String())

	// Desactivar y eliminar.
	w = doJSON(t, r, http.MethodPut, base, tokenAdmin, gin.H{"activa": false})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, base, tokenAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Encuesta eliminada correctamente")

	w = doJSON(t, r, http.MethodGet, base, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrearEncuestaPayloadInvalido(t *testing.T) {
	r, db := testutil.NewRouter(t)
	admin, _, _ := seedEncuestas(t, db)
	token := testutil.TokenPara(t, admin)

	// Sin preguntas.
	w := doJSON(t, r, http.MethodPost, "/api/encuestas", token, gin.H{"titulo": "x", "preguntas": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Pregunta sin opciones.
	w = doJSON(t, r, http.MethodPost, "/api/encuestas", token, gin.H{
		"titulo": "x", "preguntas": []gin.H{{"texto": "p", "opciones": []string{}}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResponderRespuestasAjenas(t *testing.T) {
	r, db := testutil.NewRouter(t)
	admin, residente, _ := seedEncuestas(t, db)
	tokenAdmin := testutil.TokenPara(t, admin)
	tokenResidente := testutil.TokenPara(t, residente)

	encuesta := crearEncuestaHTTP(t, r, tokenAdmin)

	// Opción que no pertenece a la pregunta.
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/encuestas/%d/responder", encuesta.ID), tokenResidente, gin.H{
		"respuestas": map[string]uint{fmt.Sprint(encuesta.Preguntas[0].ID): 9999},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Encuesta inexistente.
	w = doJSON(t, r, http.MethodPost, "/api/encuestas/999/responder", tokenResidente, gin.H{
		"respuestas": map[string]uint{"1": 1},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
