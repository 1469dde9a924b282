package server

import (
	"context"
	"net/http"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"steplog/internal/system"
	"steplog/pkg/steplog"
)

// Server exposes one Logger over HTTP so other processes can drive its
// timers and messages.
type Server struct {
	Addr   string
	Logger *steplog.Logger
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	r := NewEngine(s.Logger, system.Logger)

	srv := &http.Server{Addr: s.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	system.Logger.Info("server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// NewEngine builds the gin router for l. Requests are traced to diag at
// debug level.
func NewEngine(l *steplog.Logger, diag *clog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(diag))
	r.Use(gin.Recovery())
	mountAPI(r, &api{log: l})
	return r
}

func requestLogger(diag *clog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if diag == nil {
			return
		}
		diag.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
