package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"steplog/internal/version"
	"steplog/pkg/steplog"
)

// MessageRequest is the body of POST /api/log and POST /api/error.
type MessageRequest struct {
	Message string `json:"message" jsonschema:"description=Text written after the '-- ' prefix"`
}

// TabifyRequest is the body of PUT /api/tabify.
type TabifyRequest struct {
	Enabled *bool `json:"enabled" jsonschema:"description=Indent timer lines by nesting depth"`
}

// TimersResponse is returned by GET /api/timers.
type TimersResponse struct {
	Active []string `json:"active"`
	Depth  int      `json:"depth"`
	Tabify bool     `json:"tabify"`
}

// EndResponse is returned by a successful timer end.
type EndResponse struct {
	Name      string `json:"name"`
	ElapsedMs int64  `json:"elapsedMs"`
}

type api struct {
	log *steplog.Logger
}

func mountAPI(r *gin.Engine, a *api) {
	g := r.Group("/api")
	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	g.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"version": version.AppVersion})
	})

	g.GET("/timers", a.timers)
	g.POST("/timers/:name/start", a.start)
	g.POST("/timers/:name/end", a.end)
	g.POST("/log", a.message(a.log.Log))
	g.POST("/error", a.message(a.log.LogError))
	g.PUT("/tabify", a.tabify)
}

func (a *api) timers(c *gin.Context) {
	c.JSON(http.StatusOK, TimersResponse{
		Active: a.log.Active(),
		Depth:  a.log.Depth(),
		Tabify: a.log.Tabify(),
	})
}

func (a *api) start(c *gin.Context) {
	name := c.Param("name")
	a.log.Start(name)
	c.JSON(http.StatusOK, map[string]string{"name": name})
}

func (a *api) end(c *gin.Context) {
	name := c.Param("name")
	elapsed, err := a.log.Stop(name)
	if errors.Is(err, steplog.ErrNotStarted) {
		c.JSON(http.StatusNotFound, errJSON(err))
		return
	}
	c.JSON(http.StatusOK, EndResponse{Name: name, ElapsedMs: elapsed.Milliseconds()})
}

func (a *api) message(write func(string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MessageRequest
		if err := decodeStrict(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, errJSON(err))
			return
		}
		write(req.Message)
		c.Status(http.StatusNoContent)
	}
}

func (a *api) tabify(c *gin.Context) {
	var req TabifyRequest
	if err := decodeStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errJSON(err))
		return
	}
	if req.Enabled == nil {
		c.JSON(http.StatusBadRequest, errJSON(errors.New("enabled is required")))
		return
	}
	a.log.SetTabify(*req.Enabled)
	c.JSON(http.StatusOK, map[string]bool{"tabify": *req.Enabled})
}

func decodeStrict(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func errJSON(err error) map[string]string { return map[string]string{"error": err.Error()} }
