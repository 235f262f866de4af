package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-animalpage/pkg/testsupport"
)

func copyFixture(t *testing.T, dir, name string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(dir)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_GeneratesPage(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_data.json")
	copyFixture(t, dir, "animals_template.html")

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "Loaded 3 animals\n"+
		"First animal: American Foxhound\n"+
		"Generated HTML for animals\n"+
		"Successfully generated animals.html\n", stdout)

	goldenPath := filepath.Join("testdata", "animals.golden.html")
	got := testsupport.MustReadGolden(t, filepath.Join(dir, "animals.html"))
	if testsupport.WriteMaybeGolden(t, goldenPath, got) {
		return
	}
	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, string(got)); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}

	tmpl := testsupport.MustReadGoldenString(t, filepath.Join(dir, "animals_template.html"))
	assert.Contains(t, tmpl, "__REPLACE_ANIMALS_INFO__", "template must be left untouched")
}

func TestRoot_SingleObjectHasNoFirstAnimalLine(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_template.html")
	testsupport.WriteFile(t, dir, "animals_data.json", `{"name": "Lion"}`)

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Equal(t, "Loaded 1 animals\nGenerated HTML for animals\nSuccessfully generated animals.html\n", stdout)
}

func TestRoot_FirstAnimalWithoutName(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_template.html")
	testsupport.WriteFile(t, dir, "animals_data.json", `[{"locations": ["Africa"]}]`)

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "First animal: No name\n")
}

func TestRoot_MissingDataFile(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_template.html")

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Equal(t, "Error: File not found - "+filepath.Join(dir, "animals_data.json")+"\n", stdout)
	assert.NoFileExists(t, filepath.Join(dir, "animals.html"))
}

func TestRoot_MalformedData(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_template.html")
	testsupport.WriteFile(t, dir, "animals_data.json", `[{"name": "Lion",}]`)

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Equal(t, "Error: Invalid JSON format in animals_data.json\n", stdout)
	assert.NoFileExists(t, filepath.Join(dir, "animals.html"))
}

func TestRoot_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_data.json")

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated HTML for animals\n")
	assert.Contains(t, stdout, "Error: File not found - "+filepath.Join(dir, "animals_template.html")+"\n")
	assert.NotContains(t, stdout, "Successfully generated")
	assert.NoFileExists(t, filepath.Join(dir, "animals.html"))
}

func TestRoot_ConfigOverwritesTemplate(t *testing.T) {
	dir := t.TempDir()
	copyFixture(t, dir, "animals_data.json")
	copyFixture(t, dir, "animals_template.html")
	testsupport.WriteFile(t, dir, "animalpage.yaml", "target: template\nlog:\n  level: info\n")

	stdout, stderr, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully generated animals_template.html\n")
	assert.NoFileExists(t, filepath.Join(dir, "animals.html"))

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "animals.golden.html"))
	got := testsupport.MustReadGoldenString(t, filepath.Join(dir, "animals_template.html"))
	assert.Equal(t, want, got)
	assert.Contains(t, stderr, "using config file")
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, dir, "animalpage.toml", `target = "stdout"`)

	stdout, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "An error occurred: ")
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "animals_data.json")
	require.Error(t, err)
}
