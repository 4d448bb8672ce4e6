package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"cafe-julio/config"
	"cafe-julio/notify"
	"cafe-julio/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg      *config.Config
	composer *services.Composer
	notifier *notify.Notifier
	log      *slog.Logger
	engine   *gin.Engine
}

func New(cfg *config.Config, notifier *notify.Notifier, log *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		composer: services.NewComposer(cfg.WhatsApp),
		notifier: notifier,
		log:      log,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/menu", s.handleMenuByCategory)
		api.GET("/menu/all", s.handleMenuAll)
		api.POST("/checkout", s.handleCheckout)
		api.POST("/orders", s.handleCreateOrder)
		api.GET("/orders/:id", s.handleGetOrder)
		api.GET("/gallery", s.handleGalleryList)

		api.POST("/barista/login", s.handleLogin)
		api.POST("/barista/logout", s.handleLogout)
		api.GET("/barista/me", s.handleMe)

		admin := api.Group("/admin", s.BaristaAuth())
		{
			admin.GET("/items", s.handleAdminItems)
			admin.PATCH("/items/:id/availability", s.handleSetAvailability)
		}

		gallery := api.Group("/gallery", s.BaristaAuth())
		{
			gallery.POST("", s.handleGalleryAdd)
			gallery.DELETE("/:id", s.handleGalleryDelete)
		}
	}
	return r
}

// ServeHTTP makes the server usable directly with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.HTTP.Port,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("server listening", "port", s.cfg.HTTP.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
