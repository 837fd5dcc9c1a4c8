package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/taskboard/internal/auth"
	"github.com/monocle-dev/taskboard/internal/handlers"
	"github.com/monocle-dev/taskboard/internal/middleware"
	"github.com/monocle-dev/taskboard/internal/services"
	"github.com/monocle-dev/taskboard/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Dependencies struct {
	DB             *gorm.DB
	Signer         *auth.Signer
	Logger         zerolog.Logger
	AllowedOrigins []string
}

func NewRouter(deps Dependencies) *gin.Engine {
	handlers.UseJSONFieldNames()

	users := store.NewUserStore(deps.DB)
	projects := store.NewProjectStore(deps.DB)
	tasks := store.NewTaskStore(deps.DB)

	resolver := services.NewOwnershipResolver(projects, tasks)
	accountService := services.NewAccountService(users, deps.Signer)
	projectService := services.NewProjectService(projects, tasks, resolver)
	taskService := services.NewTaskService(tasks, resolver)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(accountService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	requireAuth := middleware.AuthMiddleware(accountService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.CreateUser)
			authRoutes.POST("/login", authHandler.LoginUser)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		projectRoutes := api.Group("/projects", requireAuth)
		{
			projectRoutes.POST("", projectHandler.CreateProject)
			projectRoutes.GET("", projectHandler.ListProjects)
			projectRoutes.GET("/:id", projectHandler.GetProject)
			projectRoutes.PUT("/:id", projectHandler.UpdateProject)
			projectRoutes.DELETE("/:id", projectHandler.DeleteProject)
		}

		taskRoutes := api.Group("/tasks", requireAuth)
		{
			taskRoutes.POST("/:projectId", taskHandler.CreateTask)
			taskRoutes.PUT("/:id", taskHandler.UpdateTask)
			taskRoutes.DELETE("/:id", taskHandler.DeleteTask)
			taskRoutes.GET("/project/:projectId", taskHandler.ListProjectTasks)
		}
	}

	return r
}
