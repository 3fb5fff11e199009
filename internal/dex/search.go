package dex

import "github.com/oakmoth/pokedex/internal/match"

// Search ranks every record's name against query and returns the best
// limit matches. Matching is case-insensitive; an empty pokedex or a
// non-positive limit yields an empty result.
func Search(pokedex []Pokemon, query string, limit int) []match.Match[Pokemon] {
	return match.Rank(pokedex, func(p Pokemon) string { return p.Name }, query, limit)
}
