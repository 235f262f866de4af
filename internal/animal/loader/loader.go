package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-animalpage/pkg/animal"
)

// Loader implements animal.Loader by delegating to file or fs.FS strategies
// and decoding the payload into an animal.Collection.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ animal.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options animal.LoaderOptions) animal.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the document behind src and decodes it. A missing document is
// reported as animal.KindNotFound, a payload that is not valid JSON as
// animal.KindMalformedData, and anything else as animal.KindUnexpected.
func (l *Loader) Load(ctx context.Context, src animal.Source) (animal.Collection, error) {
	if src == nil {
		return animal.Collection{}, animal.Unexpected("", errors.New("loader: source is nil"))
	}

	var (
		data []byte
		err  error
	)

	location := src.Location()
	switch src.Kind() {
	case animal.SourceKindFile:
		data, err = loadFile(ctx, location)
	case animal.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, location)
	default:
		err = errors.New("loader: unsupported source kind")
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return animal.Collection{}, animal.NotFound(location, err)
		}
		return animal.Collection{}, animal.Unexpected(location, err)
	}

	collection, err := animal.ParseCollection(data)
	if err != nil {
		return animal.Collection{}, animal.MalformedData(location, err)
	}
	return collection, nil
}
