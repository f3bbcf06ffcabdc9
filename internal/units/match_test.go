package units

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hammamikhairi/recipeparse/internal/domain"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		text      string
		off       int
		wantImage string
		wantUnit  domain.Unit
		wantStage Stage
	}{
		{"cup", 0, "cup", domain.UnitCup, StageSynonym},
		{"cups of milk", 0, "cups", domain.UnitCup, StagePluralSynonym},
		{"Cups", 0, "Cups", domain.UnitCup, StagePluralSynonym},
		{"1 cp flour", 2, "cp", domain.UnitCup, StageAbbreviation},
		{"tbsps sugar", 0, "tbsps", domain.UnitTablespoon, StagePluralAbbreviation},
		{"tbsp. sugar", 0, "tbsp.", domain.UnitTablespoon, StageAbbreviation},
		{"fl oz", 0, "fl oz", domain.UnitFluidOunce, StageAbbreviation},
		{"fluid ounces", 0, "fluid ounces", domain.UnitFluidOunce, StagePluralSynonym},
		{"kilos", 0, "kilos", domain.UnitKilogram, StagePluralSynonym},
		{"ℓ milk", 0, "ℓ", domain.UnitLiter, StageAbbreviation},
		{"litres", 0, "litres", domain.UnitLiter, StagePluralSynonym},
		{"pinches", 0, "pinches", domain.UnitPinch, StagePluralSynonym},
		{"a touch", 2, "touch", domain.UnitPinch, StageSynonym},
		{"packages", 0, "packages", domain.UnitPiece, StagePluralSynonym},
		{"gal,", 0, "gal", domain.UnitGallon, StageAbbreviation},
		// pound is enumerated before pint and both encode to "pnt"
		{"pnt", 0, "pnt", domain.UnitPound, StagePhonetic},
	}

	c := Default()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := c.Match(tt.text, tt.off)
			if !ok {
				t.Fatalf("no match for %q at %d", tt.text, tt.off)
			}
			assert.Equal(t, tt.wantImage, got.Image)
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, tt.wantStage, got.Stage, "stage %s", got.Stage)
		})
	}
}

func TestMatchNeedsBoundary(t *testing.T) {
	c := Default()
	for _, text := range []string{"cupboard", "garlic", "lbs2", "eggs", "", "tspx"} {
		if m, ok := c.Match(text, 0); ok {
			t.Errorf("%q: unexpected match %+v", text, m)
		}
	}
	if _, ok := c.Match("cup", 5); ok {
		t.Error("offset past the end should not match")
	}
}

func TestMatchEnumerationOrder(t *testing.T) {
	c, err := New([]Entry{
		{Name: "first", Unit: domain.UnitCup, Synonyms: []string{"dash"}},
		{Name: "second", Unit: domain.UnitPinch, Synonyms: []string{"dash"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := c.Match("dash", 0)
	if !ok || m.Unit != domain.UnitCup {
		t.Fatalf("got %+v, want first entry (cup)", m)
	}
}

func TestAtBoundary(t *testing.T) {
	assert.True(t, AtBoundary("cup", 3))
	assert.True(t, AtBoundary("cup milk", 3))
	assert.True(t, AtBoundary("cup,", 3))
	assert.False(t, AtBoundary("cups", 3))
	assert.False(t, AtBoundary("cup2", 3))
	assert.False(t, AtBoundary("cupé", 3))
}
