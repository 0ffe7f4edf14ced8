package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/memgridgo/internal/server"
)

// Serve builds the top design once and serves it over HTTP until ctx is
// cancelled.
func (a *App) Serve(ctx context.Context) error {
	g, snap, err := a.Build()
	if err != nil {
		return err
	}
	addr := fmt.Sprintf(":%d", a.config.Port)
	return server.New(a.ctx, g, snap).ListenAndServe(ctx, addr)
}
