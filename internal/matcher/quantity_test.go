package matcher

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hammamikhairi/recipeparse/internal/fraction"
)

func TestQuantity(t *testing.T) {
	tests := []struct {
		text string
		want Match
	}{
		{"1 ¼ cup", Match{"1 ¼", fraction.New(5, 4)}},
		{"1¼ cup", Match{"1¼", fraction.New(5, 4)}},
		{"11 ¼ cup", Match{"11 ¼", fraction.New(45, 4)}},
		{"¾", Match{"¾", fraction.New(3, 4)}},
		{"1 1/2 cp", Match{"1 1/2", fraction.New(3, 2)}},
		{"314 3/2", Match{"314 3/2", fraction.New(631, 2)}},
		{"1/2 cup", Match{"1/2", fraction.New(1, 2)}},
		{"0.333", Match{"0.333", fraction.New(333, 1000)}},
		{"1.25 tbsp", Match{"1.25", fraction.New(125, 100)}},
		{"3.2/4", Match{"3.2", fraction.New(32, 10)}},
		{"2 eggs", Match{"2", fraction.New(2, 1)}},
		{"a couple pinches", Match{"a couple", fraction.New(2, 1)}},
		{"A few", Match{"A few", fraction.New(3, 1)}},
		{"several cups", Match{"several", fraction.New(3, 1)}},
		{"9223372036854775807 1/2 cup", Match{"9223372036854775807", fraction.New(math.MaxInt, 1)}},
		{"9223372036854775807 ½ cup", Match{"9223372036854775807", fraction.New(math.MaxInt, 1)}},
		{"0.000000000000000001", Match{"0.000000000000000001", fraction.New(1, 1_000_000_000_000_000_000)}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := Quantity.Match(tt.text, 0)
			if !ok {
				t.Fatalf("no match for %q", tt.text)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Quantity(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestQuantityNoMatch(t *testing.T) {
	for _, text := range []string{"cup", "a couples", "-1", "/2", "a", "0.0000000000000000001", "99999999999999999999 1/2"} {
		if m, ok := Quantity.Match(text, 0); ok {
			t.Errorf("%q: unexpected match %+v", text, m)
		}
	}
}

func TestQuantityAtOffset(t *testing.T) {
	text := "flour 1/3 cup"
	got, ok := Quantity.Match(text, 6)
	if !ok {
		t.Fatal("expected a match at offset 6")
	}
	if got.Image != "1/3" {
		t.Errorf("got %q, want %q", got.Image, "1/3")
	}
}
