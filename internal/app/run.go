package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/figure"
	"github.com/specialistvlad/figcore/internal/plots"
	"github.com/specialistvlad/figcore/internal/template"
)

// Run resolves the configured figure, applies the configured edits and
// writes the result: the resolved figure, or the template made from it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	fig, err := a.loadFigure(ctx)
	if err != nil {
		return err
	}

	plot, err := plots.NewPlot(ctx, a.supplier, fig)
	if err != nil {
		return err
	}
	a.logger.Debug("Figure resolved.", "traces", len(plot.Resolved().Data))

	if a.config.HasEdits() {
		traceFlags, layoutFlags, err := plot.Update(ctx, a.config.Restyle, a.config.Relayout, a.config.Traces)
		if err != nil {
			return fmt.Errorf("failed to apply edits: %w", err)
		}
		a.logger.Info("Edits applied.",
			"restyle", len(a.config.Restyle),
			"relayout", len(a.config.Relayout),
			"trace_flags", traceFlags.Names(),
			"layout_flags", layoutFlags.Names(),
		)
	}

	if a.config.MakeTemplate {
		t, err := template.Make(ctx, a.supplier, plot.Input())
		if err != nil {
			return err
		}
		a.logger.Info("Template extracted.", "trace_types", len(t.Data), "layout_keys", len(t.Layout))
		return figure.Encode(a.outW, t.ToMap(), a.config.Output)
	}

	resolved := plot.Resolved()
	out := map[string]any{
		"data":   figure.StripPrivate(traceList(resolved.Data)),
		"layout": figure.StripPrivate(resolved.Layout),
	}
	if err := figure.Encode(a.outW, out, a.config.Output); err != nil {
		return fmt.Errorf("failed to write resolved figure: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func traceList(data []map[string]any) []any {
	out := make([]any, len(data))
	for i, trace := range data {
		out[i] = trace
	}
	return out
}
