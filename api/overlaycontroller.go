package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"overlaybot/jobs"
	"overlaybot/types"
)

// RegisterOverlayRoutes registers compile preview and render job endpoints.
func RegisterOverlayRoutes(r *gin.Engine, deps Deps) {
	oc := &overlayController{deps: deps}

	g := r.Group("/api")
	g.POST("/compile", oc.handleCompile)
	g.POST("/render", oc.handleRender)
	g.GET("/render/:id", oc.handleRenderStatus)
}

type overlayController struct {
	deps Deps
}

// handleCompile returns the filter chain for known dimensions without rendering.
func (oc *overlayController) handleCompile(c *gin.Context) {
	var req types.CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := oc.deps.Compiler.Compile(req.Width, req.Height, req.Overlays)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, types.CompileResponse{
		Filter:   res.Filter,
		Overlays: res.Overlays,
		Warnings: res.Warnings,
	})
}

// handleRender queues a render and returns 202 with the job id.
func (oc *overlayController) handleRender(c *gin.Context) {
	var req types.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.RenderResponse{Message: "Invalid JSON payload", Error: err.Error()})
		return
	}
	if req.Input == "" {
		c.JSON(http.StatusBadRequest, types.RenderResponse{Message: "input is required"})
		return
	}
	if len(req.Overlays) == 0 {
		c.JSON(http.StatusBadRequest, types.RenderResponse{Message: "at least one overlay is required"})
		return
	}

	log.Printf("📥 Received render request: input=%s overlays=%d", req.Input, len(req.Overlays))
	job, err := oc.deps.Renders.Enqueue(c.Request.Context(), req)
	if errors.Is(err, types.ErrUnsafePath) {
		c.JSON(http.StatusBadRequest, types.RenderResponse{Message: "invalid path", Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.RenderResponse{Message: "failed to queue render", Error: err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, types.RenderResponse{Success: true, Message: "render started", JobID: job.ID})
}

func (oc *overlayController) handleRenderStatus(c *gin.Context) {
	job, err := oc.deps.Renders.Store().Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, jobs.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// statusFor maps compiler errors to HTTP status codes.
func statusFor(err error) int {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrUnresolvableDimensions):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
