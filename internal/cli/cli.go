package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/figcore/internal/app"
	"github.com/specialistvlad/figcore/internal/figure"
	"gopkg.in/yaml.v3"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// editsFlag collects repeatable path=value flags. Values are YAML, so JSON
// works too and plain words need no quoting; "null" deletes.
type editsFlag map[string]any

func (e editsFlag) String() string {
	parts := make([]string, 0, len(e))
	for k := range e {
		parts = append(parts, k)
	}
	return strings.Join(parts, ",")
}

func (e editsFlag) Set(s string) error {
	path, raw, ok := strings.Cut(s, "=")
	if !ok || path == "" {
		return fmt.Errorf("expected path=value, got %q", s)
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return fmt.Errorf("invalid value for %s: %w", path, err)
	}
	e[path] = figure.Normalize(v)
	return nil
}

func parseTraces(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid trace index %q", part)
		}
		out = append(out, i)
	}
	return out, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("figcore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
figcore - Resolves partial chart figures into complete configurations.

Usage:
  figcore [options] FIGURE_PATH

Arguments:
  FIGURE_PATH
    Path to a .yaml or .json figure: {data: [...], layout: {...}}.

Examples:
  figcore -restyle marker.color=red -traces 0 figure.yaml
  figcore -relayout 'xaxis.range=[0, 10]' -output yaml figure.yaml
  figcore -make-template figure.yaml > template.yaml

Options:
`)
		flagSet.PrintDefaults()
	}

	restyle := editsFlag{}
	relayout := editsFlag{}
	figureFlag := flagSet.String("figure", "", "Path to the figure file.")
	fFlag := flagSet.String("f", "", "Path to the figure file (shorthand).")
	templateFlag := flagSet.String("template", "", "Path to a template applied beneath the figure.")
	makeTemplateFlag := flagSet.Bool("make-template", false, "Print the template extracted from the figure instead of the resolved figure.")
	flagSet.Var(restyle, "restyle", "Trace edit as path=value. Repeatable.")
	tracesFlag := flagSet.String("traces", "", "Comma separated trace indices the restyle edits apply to. Default: all.")
	flagSet.Var(relayout, "relayout", "Layout edit as path=value. Repeatable.")
	outputFlag := flagSet.String("output", "json", "Output format. Options: 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *figureFlag != "" {
		path = *figureFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Figure path determined.", "path", path)

	if path == "" {
		slog.Debug("No figure path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	traces, err := parseTraces(*tracesFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		FigurePath:   path,
		TemplatePath: *templateFlag,
		MakeTemplate: *makeTemplateFlag,
		Restyle:      restyle,
		Traces:       traces,
		Relayout:     relayout,
		Output:       strings.ToLower(*outputFlag),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
