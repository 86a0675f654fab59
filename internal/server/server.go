package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/config"
	"github.com/rmacedo/hoje-e-onde/internal/handlers"
	"github.com/rmacedo/hoje-e-onde/internal/metrics"
	"github.com/rmacedo/hoje-e-onde/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	public := r.Group("/v1")
	{
		public.POST("/cadastro", handlers.Register)
		public.POST("/login", handlers.Login)

		public.GET("/", handlers.GetFeed)
		public.GET("/calendario", handlers.Calendar)
		public.GET("/eventos/:id", handlers.GetEvent)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.POST("/eventos", handlers.SubmitEvent)
		protected.POST("/votar", handlers.Vote)
		protected.POST("/salvar-evento", handlers.SaveEvent)
		protected.POST("/remover-salvo", handlers.UnsaveEvent)
		protected.GET("/minha-area", handlers.UserArea)
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/pendentes", handlers.PendingEvents)
		admin.POST("/avaliar", handlers.ReviewEvent)
		admin.POST("/administradores", handlers.CreateAdmin)
	}
}
