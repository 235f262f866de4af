package page_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-animalpage/pkg/animal"
	"github.com/goliatone/go-animalpage/pkg/page"
	"github.com/goliatone/go-animalpage/pkg/testsupport"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     string
		fragment string
		want     string
	}{
		{name: "single token", tmpl: "<ul>__REPLACE_ANIMALS_INFO__</ul>", fragment: "<li>x</li>", want: "<ul><li>x</li></ul>"},
		{name: "every occurrence", tmpl: "__REPLACE_ANIMALS_INFO__|__REPLACE_ANIMALS_INFO__", fragment: "a", want: "a|a"},
		{name: "no token", tmpl: "<ul></ul>", fragment: "<li>x</li>", want: "<ul></ul>"},
		{name: "empty fragment", tmpl: "<ul>__REPLACE_ANIMALS_INFO__</ul>", fragment: "", want: "<ul></ul>"},
		{name: "case sensitive token", tmpl: "__replace_animals_info__", fragment: "a", want: "__replace_animals_info__"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := page.Substitute(tt.tmpl, tt.fragment); got != tt.want {
				t.Fatalf("Substitute = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembler_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	tmpl := testsupport.WriteFile(t, dir, "animals_template.html", "<ul class=\"cards\">__REPLACE_ANIMALS_INFO__</ul>\n")
	out := filepath.Join(dir, "animals.html")

	a := page.New(page.Config{TemplatePath: tmpl, OutputPath: out})
	n, err := a.Assemble(context.Background(), "<li>Lion</li>")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := "<ul class=\"cards\"><li>Lion</li></ul>\n"
	got := string(testsupport.MustReadGolden(t, out))
	if got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if n != len(want) {
		t.Fatalf("bytes = %d, want %d", n, len(want))
	}
	if original := string(testsupport.MustReadGolden(t, tmpl)); original != "<ul class=\"cards\">__REPLACE_ANIMALS_INFO__</ul>\n" {
		t.Fatalf("template modified: %q", original)
	}
}

func TestAssembler_OverwritesTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := testsupport.WriteFile(t, dir, "animals_template.html", "<ul>__REPLACE_ANIMALS_INFO__</ul>")
	out := filepath.Join(dir, "animals.html")

	a := page.New(page.Config{TemplatePath: tmpl, OutputPath: out, Target: page.TargetTemplate})
	if _, err := a.Assemble(context.Background(), "<li>Lion</li>"); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if got := string(testsupport.MustReadGolden(t, tmpl)); got != "<ul><li>Lion</li></ul>" {
		t.Fatalf("template = %q", got)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no separate output file, stat err: %v", err)
	}
}

func TestAssembler_NoPlaceholderCopiesTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := testsupport.WriteFile(t, dir, "animals_template.html", "<html><body>static</body></html>")
	out := filepath.Join(dir, "animals.html")

	if _, err := page.New(page.Config{TemplatePath: tmpl, OutputPath: out}).Assemble(context.Background(), "<li>Lion</li>"); err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got := string(testsupport.MustReadGolden(t, out)); got != "<html><body>static</body></html>" {
		t.Fatalf("output = %q", got)
	}
}

func TestAssembler_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "animals.html")

	_, err := page.New(page.Config{TemplatePath: filepath.Join(dir, "missing.html"), OutputPath: out}).Assemble(context.Background(), "x")
	if !errors.Is(err, animal.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("expected no output file, stat err: %v", statErr)
	}
}

func TestAssembler_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	tmpl := testsupport.WriteFile(t, dir, "animals_template.html", "__REPLACE_ANIMALS_INFO__")
	out := filepath.Join(dir, "no-such-dir", "animals.html")

	_, err := page.New(page.Config{TemplatePath: tmpl, OutputPath: out}).Assemble(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected write error")
	}
	if animal.KindOf(err) != animal.KindUnexpected {
		t.Fatalf("kind = %q, want unexpected", animal.KindOf(err))
	}
}

func TestAssembler_PreservesPreviousOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	out := testsupport.WriteFile(t, dir, "animals.html", "previous run")

	_, err := page.New(page.Config{TemplatePath: filepath.Join(dir, "missing.html"), OutputPath: out}).Assemble(context.Background(), "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := string(testsupport.MustReadGolden(t, out)); got != "previous run" {
		t.Fatalf("previous output changed: %q", got)
	}
}

func TestParseTarget(t *testing.T) {
	for raw, want := range map[string]page.Target{
		"":          page.TargetFile,
		"file":      page.TargetFile,
		" Template": page.TargetTemplate,
	} {
		got, err := page.ParseTarget(raw)
		if err != nil {
			t.Fatalf("ParseTarget(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseTarget(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := page.ParseTarget("stdout"); err == nil {
		t.Fatalf("expected error for unknown target")
	}
}
