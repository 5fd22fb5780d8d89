package api

import (
	"github.com/gin-gonic/gin"

	"overlaybot/compiler"
	"overlaybot/fonts"
	"overlaybot/services"
)

// FontLister lists the fonts a client may reference.
type FontLister interface {
	List() []fonts.Font
}

// Deps are the collaborators the HTTP handlers use.
type Deps struct {
	Compiler *compiler.Compiler
	Fonts    FontLister
	Renders  *services.RenderService
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterFontRoutes(r, deps.Fonts)
	RegisterOverlayRoutes(r, deps)
	return r
}
