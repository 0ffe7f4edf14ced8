package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/memgridgo/internal/builder"
	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/expr"
	"github.com/specialistvlad/memgridgo/internal/render"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
)

// ErrNoDesign is returned when neither a design nor a configuration names
// what to build.
var ErrNoDesign = errors.New("no design given: pass a design or a design configuration reference")

// Top resolves the configured top design and configuration. With only a
// configuration given, the design it references is used.
func (a *App) Top() (*design.Design, *design.Configuration, error) {
	var cfg *design.Configuration
	if a.config.Configuration != "" {
		doc, err := a.fetch(a.config.Configuration)
		if err != nil {
			return nil, nil, err
		}
		var ok bool
		if cfg, ok = design.AsConfiguration(doc); !ok {
			return nil, nil, fmt.Errorf("%s is a %s, not a design configuration", a.config.Configuration, doc.Kind())
		}
	}

	ref := a.config.Design
	switch {
	case ref != "":
		if cfg != nil && !cfg.DesignRef.IsZero() && cfg.DesignRef.String() != ref {
			a.logger.Warn("Configuration references a different design than the one requested.",
				"configuration", cfg.VLNV.String(), "configured_design", cfg.DesignRef.String(), "design", ref)
		}
	case cfg != nil && !cfg.DesignRef.IsZero():
		ref = cfg.DesignRef.String()
		a.logger.Debug("Design taken from configuration.", "design", ref)
	default:
		return nil, nil, ErrNoDesign
	}

	doc, err := a.fetch(ref)
	if err != nil {
		return nil, nil, err
	}
	des, ok := design.AsDesign(doc)
	if !ok {
		return nil, nil, fmt.Errorf("%s is a %s, not a design", ref, doc.Kind())
	}
	return des, cfg, nil
}

func (a *App) fetch(raw string) (design.Document, error) {
	ref, err := vlnv.Parse(raw)
	if err != nil {
		return nil, err
	}
	doc, ok := a.library.Document(a.ctx, ref)
	if !ok {
		return nil, fmt.Errorf("document %s not found in library", raw)
	}
	return doc, nil
}

// Build builds the configured top design. Diagnostics are not errors; the
// returned error covers only problems that prevent a build from starting.
func (a *App) Build() (*connectivity.Graph, *render.Snapshot, error) {
	des, cfg, err := a.Top()
	if err != nil {
		return nil, nil, err
	}

	res, err := expr.NewEvaluator(a.config.Params)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid parameters: %w", err)
	}

	locator := builder.New(a.library, res, builder.WithMaxDepth(a.config.MaxDepth))
	g, diags := locator.Build(a.ctx, des, cfg)
	return g, render.NewSnapshot(des.VLNV.String(), g, diags), nil
}

// Run builds the top design and writes it in the configured format.
func (a *App) Run() error {
	a.logger.Debug("App.Run method started.")
	_, snap, err := a.Build()
	if err != nil {
		return err
	}
	if err := render.Write(a.outW, a.config.Format, snap); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
