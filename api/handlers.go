// Package api is the HTTP surface. Handlers stay thin: decode, delegate
// to the domain packages, encode.
package api

import (
	"log/slog"

	"github.com/theagenttimes/tat-mcp-server/catalog"
	"github.com/theagenttimes/tat-mcp-server/earn"
	"github.com/theagenttimes/tat-mcp-server/social"
	"github.com/theagenttimes/tat-mcp-server/submissions"
)

// Handlers bundles the collaborators every endpoint needs.
type Handlers struct {
	Social   *social.Store
	Engine   *submissions.Engine
	Registry *earn.Registry
	Catalog  *catalog.Catalog
	Feed     *Hub
	Log      *slog.Logger
}

// NewHandlers wires the HTTP surface to the domain layer.
func NewHandlers(socialStore *social.Store, engine *submissions.Engine, registry *earn.Registry, cat *catalog.Catalog, feed *Hub) *Handlers {
	return &Handlers{
		Social:   socialStore,
		Engine:   engine,
		Registry: registry,
		Catalog:  cat,
		Feed:     feed,
		Log:      slog.Default().With("component", "api"),
	}
}
