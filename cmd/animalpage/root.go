package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-animalpage/internal/config"
	"github.com/goliatone/go-animalpage/internal/logging"
	"github.com/goliatone/go-animalpage/pkg/animal"
	"github.com/goliatone/go-animalpage/pkg/pipeline"
	"github.com/goliatone/go-animalpage/pkg/render"
)

func newRootCmd(workDir string) *cobra.Command {
	return &cobra.Command{
		Use:   "animalpage",
		Short: "Render animal records into an HTML page",
		Long: `animalpage reads animals_data.json, renders one card per animal and
substitutes the cards for __REPLACE_ANIMALS_INFO__ in animals_template.html,
writing the result to animals.html.

Paths, the output target and log level can be changed with an optional
animalpage.yaml or animalpage.toml in the working directory.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			generate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), workDir)
			return nil
		},
	}
}

// generate runs one pass and reports the outcome on out. Failures are
// reported as messages only; the process still exits cleanly.
func generate(ctx context.Context, out, logOut io.Writer, workDir string) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, cfgPath, err := config.Discover(workDir)
	if err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return
	}
	dataName := cfg.Data
	cfg = cfg.Resolve(workDir)

	logger, err := logging.NewWithWriter(logOut, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()
	if cfgPath != "" {
		logger.Info("using config file", zap.String("path", cfgPath))
	}

	pageCfg, err := cfg.PageConfig()
	if err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return
	}

	var renderOpts []render.Option
	if cfg.Sanitize {
		renderOpts = append(renderOpts, render.WithSanitizer(render.StrictSanitizer()))
	}

	p := pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithRenderer(render.New(renderOpts...)),
		pipeline.WithReporter(&consoleReporter{out: out}),
	)
	_, err = p.Run(ctx, pipeline.Request{
		Source: animal.SourceFromFile(cfg.Data),
		Page:   pageCfg,
	})
	if err != nil {
		reportError(out, err, dataName)
	}
}

func reportError(out io.Writer, err error, dataName string) {
	var runErr *animal.Error
	if !errors.As(err, &runErr) {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return
	}

	switch runErr.Kind {
	case animal.KindNotFound:
		fmt.Fprintf(out, "Error: File not found - %s\n", runErr.Path)
	case animal.KindMalformedData:
		fmt.Fprintf(out, "Error: Invalid JSON format in %s\n", dataName)
	default:
		cause := error(runErr)
		if runErr.Err != nil {
			cause = runErr.Err
		}
		fmt.Fprintf(out, "An error occurred: %v\n", cause)
	}
}

// consoleReporter prints the progress lines users of the tool expect.
type consoleReporter struct {
	out io.Writer
}

func (r *consoleReporter) Loaded(collection animal.Collection) {
	fmt.Fprintf(r.out, "Loaded %d animals\n", collection.Len())
	if collection.Shape() != animal.ShapeMany || collection.Len() == 0 {
		return
	}
	first := collection.Entries()[0]
	if first.Record == nil {
		return
	}
	name, ok := render.Name(*first.Record)
	if !ok {
		name = "No name"
	}
	fmt.Fprintf(r.out, "First animal: %s\n", name)
}

func (r *consoleReporter) Rendered(int) {
	fmt.Fprintln(r.out, "Generated HTML for animals")
}

func (r *consoleReporter) Written(path string) {
	fmt.Fprintf(r.out, "Successfully generated %s\n", filepath.Base(path))
}
