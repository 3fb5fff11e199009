package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEggCycleSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cycles  int
		wantMin int
		wantMax int
	}{
		{1, 1, 257},
		{17, 4113, 4369},
		{20, 4884, 5140},
		{120, 30584, 30840},
	}

	for _, tc := range tests {
		minSteps, maxSteps := EggCycleSteps(tc.cycles)
		assert.Equal(t, tc.wantMin, minSteps, "min steps for %d cycles", tc.cycles)
		assert.Equal(t, tc.wantMax, maxSteps, "max steps for %d cycles", tc.cycles)
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Normal", StatusNormal.String())
	assert.Equal(t, "Legendary", StatusSubLegendary.String())
	assert.Equal(t, "Legendary", StatusLegendary.String())
	assert.Equal(t, "Mythical", StatusMythical.String())
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Status
	}{
		{"Normal", StatusNormal},
		{"Sub Legendary", StatusSubLegendary},
		{"Legendary", StatusLegendary},
		{"Mythical", StatusMythical},
	}

	for _, tc := range tests {
		got, err := ParseStatus(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseStatus("Shiny")
	assert.Error(t, err)
}

func TestTypesAndEggTypes(t *testing.T) {
	t.Parallel()

	dual := Pokemon{Type1: "Fire", Type2: "Flying", EggType1: "Dragon", EggType2: "Monster"}
	assert.Equal(t, []string{"Fire", "Flying"}, dual.Types())
	assert.Equal(t, []string{"Dragon", "Monster"}, dual.EggTypes())

	mono := Pokemon{Type1: "Water", EggType1: "Water 1"}
	assert.Equal(t, []string{"Water"}, mono.Types())
	assert.Equal(t, []string{"Water 1"}, mono.EggTypes())
}

func TestAbilityCount(t *testing.T) {
	t.Parallel()

	full := Pokemon{Ability1: "Blaze", Ability2: "Intimidate", AbilityHidden: "Solar Power"}
	assert.Equal(t, 3, full.AbilityCount())

	withHidden := Pokemon{Ability1: "Static", AbilityHidden: "Lightning Rod"}
	assert.Equal(t, 2, withHidden.AbilityCount())

	single := Pokemon{Ability1: "Levitate"}
	assert.Equal(t, 1, single.AbilityCount())
}
