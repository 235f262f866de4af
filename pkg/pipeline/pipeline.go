package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-animalpage/internal/animal/loader"
	"github.com/goliatone/go-animalpage/pkg/animal"
	"github.com/goliatone/go-animalpage/pkg/page"
	"github.com/goliatone/go-animalpage/pkg/render"
)

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithLoader injects a custom data loader.
func WithLoader(loader animal.Loader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// WithRenderer injects a custom card renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(p *Pipeline) {
		p.renderer = renderer
	}
}

// WithLogger routes stage logging to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithReporter registers a progress observer.
func WithReporter(reporter Reporter) Option {
	return func(p *Pipeline) {
		p.reporter = reporter
	}
}

// Pipeline loads animal records, renders them into cards and writes the
// assembled page. Missing dependencies fall back to the built-in
// implementations.
type Pipeline struct {
	loader   animal.Loader
	renderer render.Renderer
	logger   *zap.Logger
	reporter Reporter
}

// New constructs a Pipeline applying any provided options.
func New(options ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

func (p *Pipeline) applyDefaults() {
	if p.loader == nil {
		p.loader = internalLoader.New(animal.NewLoaderOptions())
	}
	if p.renderer == nil {
		p.renderer = render.New()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	if p.reporter == nil {
		p.reporter = nopReporter{}
	}
}

// Request describes one run.
type Request struct {
	// Source identifies the data document. Optional when Collection is set.
	Source animal.Source

	// Collection bypasses the loader when the records are already decoded.
	Collection *animal.Collection

	// Page configures the template and output destination.
	Page page.Config
}

// Result summarises a completed run.
type Result struct {
	// Loaded counts every top-level entry, object or not.
	Loaded int
	// Cards counts the rendered cards.
	Cards int
	// Shape is the shape of the data document.
	Shape animal.Shape
	// Output is the path the page was written to.
	Output string
	// Bytes is the size of the written page.
	Bytes int
}

// Run executes the load → render → assemble sequence. Errors carry an
// animal.Kind; callers can test them with errors.Is against the animal
// sentinels.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, animal.Unexpected("", errors.New("pipeline: context is required"))
	}
	if err := ctx.Err(); err != nil {
		return Result{}, animal.Unexpected("", err)
	}

	collection, err := p.resolveCollection(ctx, req)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info("loaded animal data",
		zap.Int("count", collection.Len()),
		zap.Stringer("shape", collection.Shape()),
	)
	p.reporter.Loaded(collection)

	fragment, cards := p.renderCards(collection)
	p.logger.Debug("rendered cards",
		zap.Int("cards", cards),
		zap.String("html", fragment),
	)
	p.reporter.Rendered(cards)

	assembler := page.New(req.Page)
	written, err := assembler.Assemble(ctx, fragment)
	if err != nil {
		p.logger.Warn("page assembly failed", zap.Error(err))
		return Result{}, err
	}
	dest := assembler.Config().Destination()
	p.logger.Info("wrote page", zap.String("path", dest), zap.Int("bytes", written))
	p.reporter.Written(dest)

	return Result{
		Loaded: collection.Len(),
		Cards:  cards,
		Shape:  collection.Shape(),
		Output: dest,
		Bytes:  written,
	}, nil
}

func (p *Pipeline) resolveCollection(ctx context.Context, req Request) (animal.Collection, error) {
	if req.Collection != nil {
		return *req.Collection, nil
	}
	if req.Source == nil {
		return animal.Collection{}, animal.Unexpected("", errors.New("pipeline: source or collection is required"))
	}
	p.logger.Debug("loading animal data", zap.String("path", req.Source.Location()))
	collection, err := p.loader.Load(ctx, req.Source)
	if err != nil {
		p.logger.Warn("load failed", zap.String("path", req.Source.Location()), zap.Error(err))
		return animal.Collection{}, err
	}
	return collection, nil
}

func (p *Pipeline) renderCards(collection animal.Collection) (string, int) {
	return p.renderer.Cards(collection), len(collection.Records())
}
