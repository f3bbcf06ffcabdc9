// Package domain defines the core types and interfaces for the recipe parser.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is the structured form of a recipe text. Ingredients and steps
// keep the order in which they appear in the source.
type Recipe struct {
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
	Steps       []Step       `json:"steps" yaml:"steps"`
}

// Ingredient is a single ingredient line.
type Ingredient struct {
	Amount Amount `json:"amount" yaml:"amount"`
	Name   string `json:"ingredient" yaml:"ingredient"`
	// Section is the header of the section the ingredient belongs to, or
	// "" when it is not in a section (or de-duplicated away).
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	// Brand is reserved. No grammar rule fills it in yet.
	Brand string `json:"brand,omitempty" yaml:"brand,omitempty"`
}

// Amount is the quantity and unit of an ingredient.
type Amount struct {
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     Unit    `json:"unit" yaml:"unit"`
}

// Step is one instruction.
type Step struct {
	// ID is the list marker as written ("1.", "2)", "*"), or "" if the
	// step had none.
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string `json:"step" yaml:"step"`
}
