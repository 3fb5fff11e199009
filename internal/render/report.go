package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oakmoth/pokedex/internal/dex"
)

// Report writes the full stat sheet for a pokemon: header, pokedex data,
// base stats, training, and breeding sections.
func (p *Printer) Report(pk dex.Pokemon) {
	p.blank()
	p.header(pk)
	p.blank()
	p.pokedexSection(pk)
	p.blank()
	p.statsSection(pk)
	p.blank()
	p.trainingSection(pk)
	p.blank()
	p.breedingSection(pk)
	p.blank()
	p.blank()
}

func (p *Printer) header(pk dex.Pokemon) {
	p.printCenter(pk.Name, p.styles.Name)

	if pk.Status != dex.StatusNormal {
		p.printCenter(fmt.Sprintf("%s Pokémon", pk.Status), p.styles.Status)
	}

	p.printCenter(fmt.Sprintf("Generation %d", pk.Generation), p.styles.Plain)
}

func (p *Printer) pokedexSection(pk dex.Pokemon) {
	p.printHeading("Pokédex data")

	p.printInfo("National №", p.styles.Number.Render(strconv.Itoa(pk.Number)))
	p.printInfo("Type", p.styles.Type.Render(strings.Join(pk.Types(), " | ")))
	p.printInfo("Species", p.styles.Value.Render(pk.Species))
	p.printInfo("Height", p.optionalFloat(pk.HeightM, " m"))
	p.printInfo("Weight", p.optionalFloat(pk.WeightKg, " kg"))

	abilityLabel := "Abilities"
	if pk.AbilityCount() == 1 {
		abilityLabel = "Ability"
	}
	p.printInfo(abilityLabel, p.styles.Value.Render(pk.Ability1))

	if pk.Ability2 != "" {
		p.printInfo("", p.styles.Value.Render(pk.Ability2))
	}
	if pk.AbilityHidden != "" {
		hidden := p.styles.Value.Render(pk.AbilityHidden) + " " + p.styles.Dim.Render("(hidden ability)")
		p.printInfo("", hidden)
	}
}

func (p *Printer) statsSection(pk dex.Pokemon) {
	p.printHeading("Base Stats")

	p.printInfo("HP", p.styles.Value.Render(strconv.Itoa(pk.HP)))
	p.printInfo("Attack", p.styles.Value.Render(strconv.Itoa(pk.Attack)))
	p.printInfo("Defense", p.styles.Value.Render(strconv.Itoa(pk.Defense)))
	p.printInfo("Sp. Attack", p.styles.Value.Render(strconv.Itoa(pk.SpAttack)))
	p.printInfo("Sp. Defense", p.styles.Value.Render(strconv.Itoa(pk.SpDefense)))
	p.printInfo("Speed", p.styles.Value.Render(strconv.Itoa(pk.Speed)))
	p.printInfo("Total", p.styles.Total.Render(strconv.Itoa(pk.TotalPoints)))
}

func (p *Printer) trainingSection(pk dex.Pokemon) {
	p.printHeading("Training")

	p.printInfo("Catch Rate", p.optionalInt(pk.CatchRate))
	p.printInfo("Base Friendship", p.optionalInt(pk.BaseFriendship))
	p.printInfo("Base Experience", p.optionalInt(pk.BaseExperience))
	p.printInfo("Growth Rate", p.optionalString(pk.GrowthRate))
}

func (p *Printer) breedingSection(pk dex.Pokemon) {
	p.printHeading("Breeding")

	p.printInfo("Egg Groups", p.optionalString(strings.Join(pk.EggTypes(), ", ")))
	p.printInfo("Gender", p.genderValue(pk))
	p.printInfo("Egg Cycles", p.eggCyclesValue(pk))
}

// genderValue formats the male/female split, or the empty placeholder for
// genderless pokemon.
func (p *Printer) genderValue(pk dex.Pokemon) string {
	if pk.PercentageMale == nil {
		return p.emptyValue()
	}
	male := *pk.PercentageMale
	text := fmt.Sprintf("%s%% male, %s%% female", formatFloat(male), formatFloat(100-male))
	return p.styles.Value.Render(text)
}

// eggCyclesValue formats the cycle count with its hatch step range, e.g.
// "20 (4,884–5,140 steps)".
func (p *Printer) eggCyclesValue(pk dex.Pokemon) string {
	if pk.EggCycles == nil {
		return p.emptyValue()
	}
	cycles := *pk.EggCycles
	minSteps, maxSteps := dex.EggCycleSteps(cycles)
	steps := p.num.Sprintf("(%d–%d steps)", minSteps, maxSteps)
	return p.styles.Value.Render(strconv.Itoa(cycles)) + " " + p.styles.Dim.Render(steps)
}

func (p *Printer) optionalFloat(v *float64, unit string) string {
	if v == nil {
		return p.emptyValue()
	}
	return p.styles.Value.Render(formatFloat(*v) + unit)
}

func (p *Printer) optionalInt(v *int) string {
	if v == nil {
		return p.emptyValue()
	}
	return p.styles.Value.Render(strconv.Itoa(*v))
}

func (p *Printer) optionalString(v string) string {
	if v == "" {
		return p.emptyValue()
	}
	return p.styles.Value.Render(v)
}

// formatFloat prints a float without trailing zeros: 6.9 -> "6.9", 2 -> "2".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
