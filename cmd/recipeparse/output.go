package main

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/recipeparse/internal/display"
	"github.com/hammamikhairi/recipeparse/internal/domain"
	"github.com/hammamikhairi/recipeparse/internal/recipe"
)

// document is the JSON/YAML shape of one converted input.
type document struct {
	Source      string              `json:"source,omitempty" yaml:"source,omitempty"`
	Recipe      *domain.Recipe      `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	Ingredients []domain.Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Steps       []domain.Step       `json:"steps,omitempty" yaml:"steps,omitempty"`
	Errors      []string            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func newDocument(name string, res recipe.Result) document {
	doc := document{
		Source:      name,
		Recipe:      res.Recipe,
		Ingredients: res.Ingredients,
		Steps:       res.Steps,
	}
	for _, e := range res.Errors() {
		doc.Errors = append(doc.Errors, e.Error())
	}
	return doc
}

type emitter struct {
	emit func(name string, res recipe.Result) error
}

func newEmitter(format string, w io.Writer, printer *display.Printer) emitter {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return emitter{emit: func(name string, res recipe.Result) error {
			return enc.Encode(newDocument(name, res))
		}}
	case "yaml":
		n := 0
		return emitter{emit: func(name string, res recipe.Result) error {
			if n++; n > 1 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return err
				}
			}
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(newDocument(name, res)); err != nil {
				return err
			}
			return enc.Close()
		}}
	}
	return emitter{emit: func(name string, res recipe.Result) error {
		printer.PrintResult(name, res)
		return nil
	}}
}
