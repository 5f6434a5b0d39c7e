package server

import (
	"time"

	"github.com/danmuck/cpalctl/internal/config"
	"github.com/danmuck/cpalctl/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const version = "0.1.0"

// Server exposes the CPAL codec over HTTP.
type Server struct {
	Name          string
	Addr          string
	MaxTableBytes int64
	Appeared      time.Time

	router *gin.Engine
}

func New(cfg config.ServerConfig) *Server {
	observability.RegisterMetrics()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.Instrument(cfg.Name, log.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(cfg.CorsOrigins),
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	maxBytes := cfg.MaxTableBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxTableBytes
	}
	return &Server{
		Name:          cfg.Name,
		Addr:          cfg.Addr,
		MaxTableBytes: maxBytes,
		Appeared:      time.Now(),
		router:        r,
	}
}

func (s *Server) HTTPRouter() *gin.Engine {
	return s.router
}

func (s *Server) Serve() error {
	s.RegisterRoutes()
	log.Info().Str("service", s.Name).Str("addr", s.Addr).Msg("cpal service started")
	return s.router.Run(s.Addr)
}

func normalizeOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}
