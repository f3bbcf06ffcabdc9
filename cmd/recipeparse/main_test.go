package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipeparse/internal/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestStdinJSON(t *testing.T) {
	input := "1 1/2 cp all-purpose flour\n1 tsp vanilla extract,\n1 cup milk\n1 egg"
	code, out, _ := runCLI(t, input, "-q", "-rule", "ingredients", "-format", "json")
	assert.Equal(t, exitErrors, code)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Ingredients, 4)
	assert.Equal(t, domain.Amount{Quantity: 1.5, Unit: domain.UnitCup}, doc.Ingredients[0].Amount)
	assert.Equal(t, "all-purpose flour", doc.Ingredients[0].Name)
	require.Len(t, doc.Errors, 1)
	assert.Contains(t, doc.Errors[0], "unexpected character: ->,<- at offset: 48")
	assert.Contains(t, out, `"ingredient": "milk"`)
}

func TestFilesYAML(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Ingredients\n2 cups flour\nSteps\n1. mix")
	b := writeFile(t, dir, "b.txt", "Steps\n1. bake")

	code, out, _ := runCLI(t, "", "-q", "-format", "yaml", "-jobs", "2", a, b)
	assert.Equal(t, exitOK, code)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var docs []document
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			break
		}
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)
	assert.Equal(t, a, docs[0].Source)
	require.NotNil(t, docs[0].Recipe)
	assert.Equal(t, "flour", docs[0].Recipe.Ingredients[0].Name)
	assert.Equal(t, b, docs[1].Source)
	assert.Equal(t, "bake", docs[1].Recipe.Steps[0].Text)
}

func TestFilesTextSummary(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Ingredients\n2 cups flour")
	b := writeFile(t, dir, "b.txt", "Ingredients\n1 cup milk,")

	code, out, _ := runCLI(t, "", "-q", a, b)
	assert.Equal(t, exitErrors, code)
	assert.Contains(t, out, "flour")
	assert.Contains(t, out, "1 error(s)")
	assert.Contains(t, out, "ok")
}

func TestEnvironment(t *testing.T) {
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvDeDup, "true")
	t.Setenv(EnvLogLevel, "off")

	code, out, _ := runCLI(t, "# dough #\n1 cup flour\n2 eggs", "-rule", "ingredients")
	assert.Equal(t, exitOK, code)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Ingredients, 2)
	assert.Equal(t, "dough", doc.Ingredients[0].Section)
	assert.Equal(t, "", doc.Ingredients[1].Section)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvFormat, "yaml")
	code, out, _ := runCLI(t, "1. stir", "-q", "-rule", "steps", "-format", "json")
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(out, "{"), out)
}

func TestCustomCatalog(t *testing.T) {
	dir := t.TempDir()
	cat := writeFile(t, dir, "units.yaml", "units:\n  - name: cup\n    unit: cup\n    synonyms: [mug]\n")

	code, out, _ := runCLI(t, "2 mugs tea", "-q", "-rule", "ingredients", "-format", "json", "-catalog", cat)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, `"unit": "cup"`)
}

func TestListUnits(t *testing.T) {
	code, out, _ := runCLI(t, "", "-q", "-units")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "gallon")
	assert.Contains(t, out, "pinch")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"-format", "xml"}, "unknown output format"},
		{"unknown rule", []string{"-rule", "dessert"}, "unknown start rule"},
		{"no jobs", []string{"-jobs", "0"}, "invalid configuration"},
		{"watch without files", []string{"-watch"}, "invalid configuration"},
		{"missing file", []string{"-q", filepath.Join(t.TempDir(), "nope.txt")}, "no such file"},
		{"bad catalog", []string{"-q", "-catalog", filepath.Join(t.TempDir(), "nope.yaml")}, "no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}
