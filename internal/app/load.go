package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/template"
)

// loadFigure reads the configured figure and applies the configured
// template beneath it.
func (a *App) loadFigure(ctx context.Context) (*figure.Figure, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading figure...", "figure_path", a.config.FigurePath)

	fig, err := figure.Load(a.config.FigurePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load figure: %w", err)
	}
	logger.Info("Figure loaded.", "traces", len(fig.Data))

	if a.config.TemplatePath == "" {
		return fig, nil
	}

	logger.Debug("Loading template...", "template_path", a.config.TemplatePath)
	t, err := template.Load(a.config.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	logger.Info("Template loaded.", "trace_types", len(t.Data), "layout_keys", len(t.Layout))
	return template.Apply(fig, t, a.supplier), nil
}
