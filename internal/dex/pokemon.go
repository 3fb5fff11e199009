// Package dex holds the embedded pokedex dataset: the record type, the
// CSV loader that materializes it, and the fuzzy search entry point the
// CLI calls.
package dex

import "fmt"

// stepsPerEggCycle is how many steps one egg cycle represents.
const stepsPerEggCycle = 257

// Pokemon is one immutable record of the dataset. Optional numeric fields
// are pointers; nil means the dataset leaves them blank (a nil
// PercentageMale marks a genderless species). Optional string fields are
// empty when absent.
type Pokemon struct {
	Number     int
	Name       string
	Generation int
	Status     Status
	Species    string

	Type1 string
	Type2 string

	HeightM  *float64
	WeightKg *float64

	Ability1      string
	Ability2      string
	AbilityHidden string

	TotalPoints int
	HP          int
	Attack      int
	Defense     int
	SpAttack    int
	SpDefense   int
	Speed       int

	CatchRate      *int
	BaseFriendship *int
	BaseExperience *int
	GrowthRate     string

	EggType1       string
	EggType2       string
	PercentageMale *float64
	EggCycles      *int
}

// Types returns the present type names, primary first.
func (p Pokemon) Types() []string {
	return nonEmpty(p.Type1, p.Type2)
}

// EggTypes returns the present egg group names.
func (p Pokemon) EggTypes() []string {
	return nonEmpty(p.EggType1, p.EggType2)
}

// AbilityCount counts the abilities present, hidden included.
func (p Pokemon) AbilityCount() int {
	return len(nonEmpty(p.Ability1, p.Ability2, p.AbilityHidden))
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// EggCycleSteps reports the step range needed to hatch an egg with the
// given cycle count.
func EggCycleSteps(cycles int) (minSteps, maxSteps int) {
	return (cycles-1)*stepsPerEggCycle + 1, cycles * stepsPerEggCycle
}

// Status classifies a record's rarity tier.
type Status int

const (
	StatusNormal Status = iota
	StatusSubLegendary
	StatusLegendary
	StatusMythical
)

// ParseStatus maps the dataset's status column to a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Normal":
		return StatusNormal, nil
	case "Sub Legendary":
		return StatusSubLegendary, nil
	case "Legendary":
		return StatusLegendary, nil
	case "Mythical":
		return StatusMythical, nil
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

// String returns the display label. Sub-legendaries display as Legendary;
// the finer distinction is dataset taxonomy only.
func (s Status) String() string {
	switch s {
	case StatusSubLegendary, StatusLegendary:
		return "Legendary"
	case StatusMythical:
		return "Mythical"
	default:
		return "Normal"
	}
}
