package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/palonegro-conectado/server/config"
	"github.com/palonegro-conectado/server/controllers"
	"github.com/palonegro-conectado/server/middleware"
	"github.com/palonegro-conectado/server/services"
)

// SetupRoutes arma la tabla de rutas del portal con las dependencias
// inyectadas. Las operaciones protegidas pasan por AuthJWT y, cuando el
// acceso depende del rol, por Autorizar contra la tabla de capacidades.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	secreto := []byte(cfg.JWTSecret)
	auth := middleware.AuthJWT(db, secreto)

	health := controllers.NewHealthController(db)
	authCtrl := controllers.NewAuthController(db, secreto, log)
	usuarios := controllers.NewUsuarioController(db, log)
	noticias := controllers.NewNoticiaController(db)
	comentarios := controllers.NewComentarioController(db)
	eventos := controllers.NewEventoController(db)
	reglas := controllers.NewReglaController(db)
	quejas := controllers.NewQuejaController(db)
	denuncias := controllers.NewDenunciaController(db)
	sugerencias := controllers.NewSugerenciaController(db)
	encuestas := controllers.NewEncuestaController(services.NewEncuestaService(db, log), log)
	tesoreria := controllers.NewTesoreriaController(db)
	notificaciones := controllers.NewNotificacionController(db, log)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "API Palonegro Conectado funcionando")
	})
	r.GET("/health", health.Check)

	api := r.Group("/api")
	{
		grpAuth := api.Group("/auth")
		{
			grpAuth.POST("/login", middleware.RateLimitLogin(), authCtrl.Login)
		}

		grpUsers := api.Group("/users")
		grpUsers.Use(auth)
		{
			grpUsers.POST("/cambiar-password", usuarios.CambiarPassword)
			grpUsers.GET("", middleware.Autorizar(middleware.OpUsuarioAdministrar), usuarios.Listar)
			grpUsers.POST("", middleware.Autorizar(middleware.OpUsuarioAdministrar), usuarios.Crear)
			// Lectura y edición propias se resuelven dentro del handler.
			grpUsers.GET("/:id", usuarios.Obtener)
			grpUsers.PUT("/:id", usuarios.Actualizar)
			grpUsers.DELETE("/:id", middleware.Autorizar(middleware.OpUsuarioAdministrar), usuarios.Eliminar)
		}

		grpNoticias := api.Group("/noticias")
		{
			grpNoticias.GET("", noticias.Listar)
			grpNoticias.GET("/:id", noticias.Obtener)
			grpNoticias.POST("", auth, middleware.Autorizar(middleware.OpNoticiaEscribir), noticias.Crear)
			grpNoticias.PUT("/:id", auth, middleware.Autorizar(middleware.OpNoticiaEscribir), noticias.Actualizar)
			grpNoticias.DELETE("/:id", auth, middleware.Autorizar(middleware.OpNoticiaEscribir), noticias.Eliminar)
		}

		grpComentarios := api.Group("/comentarios")
		{
			grpComentarios.GET("/:noticiaId", comentarios.Listar)
			grpComentarios.POST("/:noticiaId", auth, middleware.Autorizar(middleware.OpComentarioCrear), comentarios.Crear)
		}

		grpEventos := api.Group("/eventos")
		{
			grpEventos.GET("", eventos.Listar)
			grpEventos.GET("/:id", eventos.Obtener)
			grpEventos.POST("", auth, middleware.Autorizar(middleware.OpEventoEscribir), eventos.Crear)
			grpEventos.PUT("/:id", auth, middleware.Autorizar(middleware.OpEventoEscribir), eventos.Actualizar)
			grpEventos.DELETE("/:id", auth, middleware.Autorizar(middleware.OpEventoEscribir), eventos.Eliminar)
		}

		grpReglas := api.Group("/reglas")
		{
			grpReglas.GET("", reglas.Listar)
			grpReglas.GET("/:id", reglas.Obtener)
			grpReglas.POST("", auth, middleware.Autorizar(middleware.OpReglaEscribir), reglas.Crear)
			grpReglas.PUT("/:id", auth, middleware.Autorizar(middleware.OpReglaEscribir), reglas.Actualizar)
			grpReglas.DELETE("/:id", auth, middleware.Autorizar(middleware.OpReglaEscribir), reglas.Eliminar)
		}

		grpQuejas := api.Group("/quejas")
		grpQuejas.Use(auth)
		{
			grpQuejas.POST("", middleware.Autorizar(middleware.OpQuejaCrear), quejas.Crear)
			grpQuejas.GET("", middleware.Autorizar(middleware.OpQuejaAdministrar), quejas.Listar)
			grpQuejas.GET("/:id", middleware.Autorizar(middleware.OpQuejaAdministrar), quejas.Obtener)
			grpQuejas.PUT("/:id", middleware.Autorizar(middleware.OpQuejaAdministrar), quejas.Actualizar)
			grpQuejas.DELETE("/:id", middleware.Autorizar(middleware.OpQuejaAdministrar), quejas.Eliminar)
		}

		grpDenuncias := api.Group("/denuncias")
		grpDenuncias.Use(auth)
		{
			grpDenuncias.POST("", middleware.Autorizar(middleware.OpDenunciaCrear), denuncias.Crear)
			grpDenuncias.GET("", middleware.Autorizar(middleware.OpDenunciaListar), denuncias.Listar)
		}

		grpSugerencias := api.Group("/sugerencias")
		grpSugerencias.Use(auth)
		{
			grpSugerencias.POST("", middleware.Autorizar(middleware.OpSugerenciaCrear), sugerencias.Crear)
			grpSugerencias.GET("", middleware.Autorizar(middleware.OpSugerenciaListar), sugerencias.Listar)
		}

		grpEncuestas := api.Group("/encuestas")
		grpEncuestas.Use(auth)
		{
			grpEncuestas.GET("", middleware.Autorizar(middleware.OpEncuestaConsultar), encuestas.Listar)
			grpEncuestas.POST("", middleware.Autorizar(middleware.OpEncuestaAdministrar), encuestas.Crear)
			grpEncuestas.GET("/:id", middleware.Autorizar(middleware.OpEncuestaConsultar), encuestas.Obtener)
			grpEncuestas.PUT("/:id", middleware.Autorizar(middleware.OpEncuestaAdministrar), encuestas.CambiarEstado)
			grpEncuestas.DELETE("/:id", middleware.Autorizar(middleware.OpEncuestaAdministrar), encuestas.Eliminar)
			grpEncuestas.POST("/:id/responder", middleware.Autorizar(middleware.OpEncuestaParticipar), encuestas.Responder)
			grpEncuestas.GET("/:id/resultados", middleware.Autorizar(middleware.OpEncuestaConsultar), encuestas.Resultados)
			grpEncuestas.GET("/:id/participacion", middleware.Autorizar(middleware.OpEncuestaConsultar), encuestas.Participacion)
		}

		grpTesoreria := api.Group("/tesoreria")
		grpTesoreria.Use(auth, middleware.Autorizar(middleware.OpTesoreriaAdministrar))
		{
			grpTesoreria.GET("", tesoreria.Listar)
			grpTesoreria.POST("", tesoreria.Crear)
			grpTesoreria.GET("/:id", tesoreria.Obtener)
			grpTesoreria.PUT("/:id", tesoreria.Actualizar)
			grpTesoreria.DELETE("/:id", tesoreria.Eliminar)
		}

		grpNotificaciones := api.Group("/notificaciones")
		grpNotificaciones.Use(auth)
		{
			grpNotificaciones.GET("", notificaciones.Listar)
			grpNotificaciones.POST("", middleware.Autorizar(middleware.OpNotificacionDespachar), notificaciones.Crear)
			grpNotificaciones.PUT("/:id/leida", notificaciones.MarcarLeida)
		}
	}
}
