// Package animalpage renders animal records into an HTML page. The root
// package re-exports the constructors most callers need; the stage contracts
// live under pkg/.
package animalpage

import (
	"context"

	internalLoader "github.com/goliatone/go-animalpage/internal/animal/loader"
	"github.com/goliatone/go-animalpage/pkg/animal"
	"github.com/goliatone/go-animalpage/pkg/page"
	"github.com/goliatone/go-animalpage/pkg/pipeline"
)

// Placeholder aliases page.Placeholder.
const Placeholder = page.Placeholder

// Result aliases pipeline.Result.
type Result = pipeline.Result

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...animal.LoaderOption) animal.Loader {
	cfg := animal.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewPipeline exposes the pipeline constructor from the top-level module.
func NewPipeline(options ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(options...)
}

// GeneratePage loads dataPath, renders its records and writes the template at
// templatePath, with the placeholder substituted, to outputPath.
func GeneratePage(ctx context.Context, dataPath, templatePath, outputPath string, options ...pipeline.Option) (Result, error) {
	p := pipeline.New(options...)
	return p.Run(ctx, pipeline.Request{
		Source: animal.SourceFromFile(dataPath),
		Page: page.Config{
			TemplatePath: templatePath,
			OutputPath:   outputPath,
			Target:       page.TargetFile,
		},
	})
}
