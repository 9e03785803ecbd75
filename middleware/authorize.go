package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palonegro-conectado/server/models"
)

// Operacion identifica una capacidad del portal sujeta a control por rol.
type Operacion string

const (
	OpUsuarioAdministrar     Operacion = "usuario:administrar"
	OpNoticiaEscribir        Operacion = "noticia:escribir"
	OpComentarioCrear        Operacion = "comentario:crear"
	OpEventoEscribir         Operacion = "evento:escribir"
	OpReglaEscribir          Operacion = "regla:escribir"
	OpQuejaCrear             Operacion = "queja:crear"
	OpQuejaAdministrar       Operacion = "queja:administrar"
	OpDenunciaCrear          Operacion = "denuncia:crear"
	OpDenunciaListar         Operacion = "denuncia:listar"
	OpSugerenciaCrear        Operacion = "sugerencia:crear"
	OpSugerenciaListar       Operacion = "sugerencia:listar"
	OpEncuestaConsultar      Operacion = "encuesta:consultar"
	OpEncuestaAdministrar    Operacion = "encuesta:administrar"
	OpEncuestaParticipar     Operacion = "encuesta:participar"
	OpTesoreriaAdministrar   Operacion = "tesoreria:administrar"
	OpNotificacionDespachar  Operacion = "notificacion:despachar"
)

// capacidades es la única tabla de autorización del portal: cada operación
// protegida lista los roles que pueden ejecutarla.
var capacidades = map[Operacion][]models.Rol{
	OpUsuarioAdministrar:    {models.RolAdministrador},
	OpNoticiaEscribir:       {models.RolAdministrador},
	OpComentarioCrear:       {models.RolAdministrador, models.RolResidente, models.RolTesorero},
	OpEventoEscribir:        {models.RolAdministrador},
	OpReglaEscribir:         {models.RolAdministrador},
	OpQuejaCrear:            {models.RolAdministrador, models.RolResidente, models.RolTesorero},
	OpQuejaAdministrar:      {models.RolAdministrador},
	OpDenunciaCrear:         {models.RolAdministrador, models.RolResidente, models.RolTesorero},
	OpDenunciaListar:        {models.RolAdministrador},
	OpSugerenciaCrear:       {models.RolAdministrador, models.RolResidente, models.RolTesorero},
	OpSugerenciaListar:      {models.RolAdministrador},
	OpEncuestaConsultar:     {models.RolAdministrador, models.RolResidente},
	OpEncuestaAdministrar:   {models.RolAdministrador},
	OpEncuestaParticipar:    {models.RolAdministrador, models.RolResidente},
	OpTesoreriaAdministrar:  {models.RolTesorero},
	OpNotificacionDespachar: {models.RolAdministrador},
}

// Permitido consulta la tabla de capacidades.
func Permitido(op Operacion, rol models.Rol) bool {
	for _, permitido := range capacidades[op] {
		if rol == permitido {
			return true
		}
	}
	return false
}

// Autorizar rechaza con 403 a todo usuario cuyo rol no esté en la tabla de
// capacidades para la operación. Debe ir después de AuthJWT.
func Autorizar(op Operacion) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(CtxUsuario)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requerido"})
			return
		}
		u := v.(models.Usuario)
		if !Permitido(op, u.Rol) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Acceso denegado"})
			return
		}
		c.Next()
	}
}
