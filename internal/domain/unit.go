package domain

// Unit is a canonical unit of measure.
type Unit string

const (
	UnitMilligram  Unit = "mg"
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitOunce      Unit = "oz"
	UnitPound      Unit = "lb"
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "l"
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitFluidOunce Unit = "fl oz"
	UnitCup        Unit = "cup"
	UnitPint       Unit = "pt"
	UnitQuart      Unit = "qt"
	UnitGallon     Unit = "gal"
	UnitPiece      Unit = "piece"
	UnitPinch      Unit = "pinch"
)

// AllUnits lists every canonical unit in catalog order.
var AllUnits = []Unit{
	UnitMilligram, UnitGram, UnitKilogram,
	UnitOunce, UnitPound,
	UnitMilliliter, UnitLiter, UnitTeaspoon, UnitTablespoon, UnitFluidOunce,
	UnitCup, UnitPint, UnitQuart, UnitGallon,
	UnitPiece, UnitPinch,
}

// Valid reports whether u is one of the canonical units.
func (u Unit) Valid() bool {
	for _, known := range AllUnits {
		if u == known {
			return true
		}
	}
	return false
}

func (u Unit) String() string { return string(u) }
