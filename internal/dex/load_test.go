package dex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "pokedex_number,name,generation,status,species,type_number,type_1,type_2," +
	"height_m,weight_kg,abilities_number,ability_1,ability_2,ability_hidden," +
	"total_points,hp,attack,defense,sp_attack,sp_defense,speed,catch_rate," +
	"base_friendship,base_experience,growth_rate,egg_type_number,egg_type_1," +
	"egg_type_2,percentage_male,egg_cycles"

func TestLoadEmbeddedDataset(t *testing.T) {
	t.Parallel()

	pokedex, err := Load()
	require.NoError(t, err)
	require.Len(t, pokedex, 151)

	// Spot-check the first and last records.
	assert.Equal(t, 1, pokedex[0].Number)
	assert.Equal(t, "Bulbasaur", pokedex[0].Name)
	assert.Equal(t, []string{"Grass", "Poison"}, pokedex[0].Types())
	assert.Equal(t, 151, pokedex[150].Number)
	assert.Equal(t, "Mew", pokedex[150].Name)
	assert.Equal(t, StatusMythical, pokedex[150].Status)

	seen := make(map[int]bool, len(pokedex))
	for _, p := range pokedex {
		assert.NotEmpty(t, p.Name, "record %d", p.Number)
		assert.False(t, seen[p.Number], "duplicate number %d", p.Number)
		seen[p.Number] = true

		total := p.HP + p.Attack + p.Defense + p.SpAttack + p.SpDefense + p.Speed
		assert.Equal(t, p.TotalPoints, total, "%s stat total", p.Name)
	}
}

func TestParseSingleRow(t *testing.T) {
	t.Parallel()

	input := testHeader + "\n" +
		"6,Charizard,1,Normal,Flame Pokémon,2,Fire,Flying,1.7,90.5,2,Blaze,,Solar Power," +
		"534,78,84,78,109,85,100,45,70,240,Medium Slow,2,Dragon,Monster,87.5,20\n"

	pokedex, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pokedex, 1)

	p := pokedex[0]
	assert.Equal(t, 6, p.Number)
	assert.Equal(t, "Charizard", p.Name)
	assert.Equal(t, StatusNormal, p.Status)
	assert.Equal(t, "Flame Pokémon", p.Species)
	assert.Equal(t, []string{"Fire", "Flying"}, p.Types())
	require.NotNil(t, p.HeightM)
	assert.InDelta(t, 1.7, *p.HeightM, 1e-9)
	require.NotNil(t, p.WeightKg)
	assert.InDelta(t, 90.5, *p.WeightKg, 1e-9)
	assert.Equal(t, "Blaze", p.Ability1)
	assert.Empty(t, p.Ability2)
	assert.Equal(t, "Solar Power", p.AbilityHidden)
	assert.Equal(t, 534, p.TotalPoints)
	require.NotNil(t, p.CatchRate)
	assert.Equal(t, 45, *p.CatchRate)
	assert.Equal(t, []string{"Dragon", "Monster"}, p.EggTypes())
	require.NotNil(t, p.PercentageMale)
	assert.InDelta(t, 87.5, *p.PercentageMale, 1e-9)
	require.NotNil(t, p.EggCycles)
	assert.Equal(t, 20, *p.EggCycles)
}

func TestParseOptionalFieldsEmpty(t *testing.T) {
	t.Parallel()

	input := testHeader + "\n" +
		"150,Mewtwo,1,Legendary,Genetic Pokémon,1,Psychic,,,,1,Pressure,,," +
		"680,106,110,90,154,90,130,,,,Slow,1,Undiscovered,,,\n"

	pokedex, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pokedex, 1)

	p := pokedex[0]
	assert.Equal(t, StatusLegendary, p.Status)
	assert.Nil(t, p.HeightM)
	assert.Nil(t, p.WeightKg)
	assert.Nil(t, p.CatchRate)
	assert.Nil(t, p.BaseFriendship)
	assert.Nil(t, p.BaseExperience)
	assert.Nil(t, p.PercentageMale)
	assert.Nil(t, p.EggCycles)
	assert.Equal(t, []string{"Psychic"}, p.Types())
	assert.Equal(t, []string{"Undiscovered"}, p.EggTypes())
}

func TestParseRejectsEmptyName(t *testing.T) {
	t.Parallel()

	input := testHeader + "\n" +
		"6,,1,Normal,Flame Pokémon,2,Fire,Flying,1.7,90.5,2,Blaze,,Solar Power," +
		"534,78,84,78,109,85,100,45,70,240,Medium Slow,2,Dragon,Monster,87.5,20\n"

	_, err := Parse(strings.NewReader(input))
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindEmptyName, lerr.Kind)
	assert.Equal(t, 2, lerr.Row)
}

func TestParseRejectsMalformedValue(t *testing.T) {
	t.Parallel()

	input := testHeader + "\n" +
		"6,Charizard,1,Normal,Flame Pokémon,2,Fire,Flying,1.7,90.5,2,Blaze,,Solar Power," +
		"534,not-a-number,84,78,109,85,100,45,70,240,Medium Slow,2,Dragon,Monster,87.5,20\n"

	_, err := Parse(strings.NewReader(input))
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindMalformedRow, lerr.Kind)
	assert.Equal(t, "hp", lerr.Column)
	assert.Equal(t, 2, lerr.Row)
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	input := testHeader + "\n" +
		"6,Charizard,1,Shiny,Flame Pokémon,2,Fire,Flying,1.7,90.5,2,Blaze,,Solar Power," +
		"534,78,84,78,109,85,100,45,70,240,Medium Slow,2,Dragon,Monster,87.5,20\n"

	_, err := Parse(strings.NewReader(input))
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindMalformedRow, lerr.Kind)
	assert.Equal(t, "status", lerr.Column)
}

func TestParseRejectsDuplicateNumber(t *testing.T) {
	t.Parallel()

	row := "6,Charizard,1,Normal,Flame Pokémon,2,Fire,Flying,1.7,90.5,2,Blaze,,Solar Power," +
		"534,78,84,78,109,85,100,45,70,240,Medium Slow,2,Dragon,Monster,87.5,20"
	input := testHeader + "\n" + row + "\n" + row + "\n"

	_, err := Parse(strings.NewReader(input))
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindMalformedRow, lerr.Kind)
	assert.Equal(t, "pokedex_number", lerr.Column)
	assert.Equal(t, 3, lerr.Row)
}

func TestParseRejectsMissingColumn(t *testing.T) {
	t.Parallel()

	input := strings.Replace(testHeader, ",speed,", ",quickness,", 1) + "\n"

	_, err := Parse(strings.NewReader(input))
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindMalformedRow, lerr.Kind)
	assert.Equal(t, "speed", lerr.Column)
	assert.Equal(t, 1, lerr.Row)
}

func TestParseNoPartialResults(t *testing.T) {
	t.Parallel()

	good := "6,Charizard,1,Normal,Flame Pokémon,2,Fire,Flying,1.7,90.5,2,Blaze,,Solar Power," +
		"534,78,84,78,109,85,100,45,70,240,Medium Slow,2,Dragon,Monster,87.5,20"
	bad := "7,Squirtle,1,Normal,Tiny Turtle Pokémon,1,Water,,0.5,9,2,Torrent,,Rain Dish," +
		"314,44,48,65,50,64,43,bogus,70,63,Medium Slow,2,Monster,Water 1,87.5,20"
	input := testHeader + "\n" + good + "\n" + bad + "\n"

	pokedex, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, pokedex)
}
