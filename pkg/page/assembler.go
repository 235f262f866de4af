package page

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-animalpage/pkg/animal"
)

// Target selects where the finished page is written.
type Target string

const (
	// TargetFile writes to Config.OutputPath and leaves the template alone.
	TargetFile Target = "file"
	// TargetTemplate overwrites the template in place.
	TargetTemplate Target = "template"
)

// ParseTarget validates a configured target name. The empty string selects
// TargetFile.
func ParseTarget(raw string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(raw))) {
	case "", TargetFile:
		return TargetFile, nil
	case TargetTemplate:
		return TargetTemplate, nil
	}
	return "", fmt.Errorf("page: unknown output target %q", raw)
}

// Config describes the template and destination of one assembly.
type Config struct {
	TemplatePath string
	OutputPath   string
	Target       Target
}

// Destination resolves the path the page will be written to.
func (c Config) Destination() string {
	if c.Target == TargetTemplate {
		return c.TemplatePath
	}
	return c.OutputPath
}

// Assembler reads a template, substitutes the placeholder and writes the
// result.
type Assembler struct {
	cfg Config
}

// New constructs an Assembler for cfg.
func New(cfg Config) *Assembler {
	if cfg.Target == "" {
		cfg.Target = TargetFile
	}
	return &Assembler{cfg: cfg}
}

// Config returns the assembler configuration.
func (a *Assembler) Config() Config {
	return a.cfg
}

// Assemble writes the template with fragment substituted to the configured
// destination and returns the number of bytes written. Nothing is written when
// the template cannot be read.
func (a *Assembler) Assemble(ctx context.Context, fragment string) (int, error) {
	if a == nil {
		return 0, animal.Unexpected("", errors.New("page: assembler is nil"))
	}
	tmpl, err := a.ReadTemplate(ctx)
	if err != nil {
		return 0, err
	}

	dest := a.cfg.Destination()
	if dest == "" {
		return 0, animal.Unexpected("", errors.New("page: output path is required"))
	}

	output := Substitute(tmpl, fragment)
	if err := ctx.Err(); err != nil {
		return 0, animal.Unexpected(dest, err)
	}
	if err := writeFile(dest, []byte(output)); err != nil {
		return 0, animal.Unexpected(dest, err)
	}
	return len(output), nil
}

// ReadTemplate returns the full template text.
func (a *Assembler) ReadTemplate(ctx context.Context) (string, error) {
	path := a.cfg.TemplatePath
	if path == "" {
		return "", animal.Unexpected("", errors.New("page: template path is required"))
	}
	if err := ctx.Err(); err != nil {
		return "", animal.Unexpected(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", animal.NotFound(path, err)
		}
		return "", animal.Unexpected(path, err)
	}
	return string(data), nil
}

// writeFile replaces path through a temporary sibling so a failed write never
// leaves a truncated page behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("page: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("page: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("page: close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("page: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("page: replace %s: %w", path, err)
	}
	return nil
}
