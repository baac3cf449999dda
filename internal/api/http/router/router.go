package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/notekeeper-server/internal/api/http/handler"
	"github.com/dtroode/notekeeper-server/internal/api/http/middleware"
	"github.com/dtroode/notekeeper-server/internal/logger"
	"github.com/dtroode/notekeeper-server/internal/model"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	noteService    handler.NoteService
	tokenParser    model.TokenParser
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	noteService handler.NoteService,
	tokenParser model.TokenParser,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		noteService:    noteService,
		tokenParser:    tokenParser,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the middleware pipeline and route table.
// The pipeline order is logging, recovery, CORS, then per-group
// authentication; registration and sign-in stay public.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenParser, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(logging.Handle)
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	if len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = r.allowedOrigins
	}
	engine.Use(cors.New(corsConfig))

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	noteHandler := handler.NewNote(r.noteService, r.contextManager, r.logger)

	users := engine.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/signin", authHandler.SignIn)

		authenticated := users.Group("", authenticate.Handle)
		{
			authenticated.GET("", userHandler.GetAll)
			authenticated.GET("/search", userHandler.Search)
			authenticated.GET("/:id", userHandler.GetByID)
			authenticated.PUT("/:id", userHandler.Update)
			authenticated.DELETE("/:id", userHandler.Delete)
		}
	}

	notes := engine.Group("/notes", authenticate.Handle)
	{
		notes.GET("", noteHandler.GetAll)
		notes.GET("/recycled", noteHandler.GetRecycled)
		notes.GET("/:id", noteHandler.GetByID)
		notes.POST("", noteHandler.Create)
		notes.PUT("/:id", noteHandler.Update)
		notes.POST("/:id/share", noteHandler.Share)
		notes.POST("/:id/recycle", noteHandler.Recycle)
		notes.POST("/:id/restore", noteHandler.Restore)
		notes.DELETE("/:id", noteHandler.Delete)
	}

	return engine
}
