package dex

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed data/pokedex.csv
var dataFS embed.FS

// LoadErrorKind distinguishes the ways dataset bytes can be invalid.
type LoadErrorKind int

const (
	// KindMalformedRow covers missing columns, unparseable values, and
	// duplicate record numbers.
	KindMalformedRow LoadErrorKind = iota
	// KindEmptyName marks a row whose name field is blank. Such a record
	// could never be matched and is rejected outright.
	KindEmptyName
)

// LoadError reports why the dataset failed to load. Row is the 1-based CSV
// line (the header is row 1); Column names the offending field when known.
type LoadError struct {
	Kind   LoadErrorKind
	Row    int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Kind == KindEmptyName:
		return fmt.Sprintf("pokedex row %d: empty name", e.Row)
	case e.Column != "":
		return fmt.Sprintf("pokedex row %d, column %s: %v", e.Row, e.Column, e.Err)
	default:
		return fmt.Sprintf("pokedex row %d: %v", e.Row, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

var errMissingColumn = errors.New("missing column")

// columns is the full dataset header, in file order. Every column must be
// present; the optional ones may hold empty values.
var columns = []string{
	"pokedex_number", "name", "generation", "status", "species",
	"type_number", "type_1", "type_2",
	"height_m", "weight_kg",
	"abilities_number", "ability_1", "ability_2", "ability_hidden",
	"total_points", "hp", "attack", "defense", "sp_attack", "sp_defense", "speed",
	"catch_rate", "base_friendship", "base_experience", "growth_rate",
	"egg_type_number", "egg_type_1", "egg_type_2", "percentage_male", "egg_cycles",
}

// Load parses the embedded dataset. The load is atomic: any invalid row
// fails the whole call with a *LoadError and no records are returned.
// Rows come back in file order.
func Load() ([]Pokemon, error) {
	raw, err := dataFS.ReadFile("data/pokedex.csv")
	if err != nil {
		return nil, fmt.Errorf("read embedded pokedex: %w", err)
	}
	return Parse(bytes.NewReader(raw))
}

// Parse reads one dataset from r. Split out from Load so tests can feed
// synthetic datasets.
func Parse(r io.Reader) ([]Pokemon, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read pokedex header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		idx[strings.TrimSpace(cell)] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return nil, &LoadError{Kind: KindMalformedRow, Row: 1, Column: col, Err: errMissingColumn}
		}
	}

	var out []Pokemon
	seen := make(map[int]int)
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Kind: KindMalformedRow, Row: row, Err: err}
		}

		p, lerr := parseRow(rec, idx, row)
		if lerr != nil {
			return nil, lerr
		}
		if first, dup := seen[p.Number]; dup {
			return nil, &LoadError{
				Kind:   KindMalformedRow,
				Row:    row,
				Column: "pokedex_number",
				Err:    fmt.Errorf("duplicate number %d, first used on row %d", p.Number, first),
			}
		}
		seen[p.Number] = row
		out = append(out, p)
	}
	return out, nil
}

// rowReader pulls typed fields out of one CSV record, remembering the
// first failure so parseRow reads straight through without branching.
type rowReader struct {
	rec []string
	idx map[string]int
	row int
	err *LoadError
}

func (r *rowReader) fail(col string, err error) {
	if r.err == nil {
		r.err = &LoadError{Kind: KindMalformedRow, Row: r.row, Column: col, Err: err}
	}
}

func (r *rowReader) str(col string) string {
	i := r.idx[col]
	if i >= len(r.rec) {
		r.fail(col, errMissingColumn)
		return ""
	}
	return strings.TrimSpace(r.rec[i])
}

func (r *rowReader) intField(col string) int {
	s := r.str(col)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(col, err)
		return 0
	}
	return v
}

func (r *rowReader) optIntField(col string) *int {
	s := r.str(col)
	if r.err != nil || s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail(col, err)
		return nil
	}
	return &v
}

func (r *rowReader) optFloatField(col string) *float64 {
	s := r.str(col)
	if r.err != nil || s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.fail(col, err)
		return nil
	}
	return &v
}

func (r *rowReader) statusField(col string) Status {
	s := r.str(col)
	if r.err != nil {
		return StatusNormal
	}
	status, err := ParseStatus(s)
	if err != nil {
		r.fail(col, err)
		return StatusNormal
	}
	return status
}

func parseRow(rec []string, idx map[string]int, row int) (Pokemon, *LoadError) {
	r := &rowReader{rec: rec, idx: idx, row: row}

	p := Pokemon{
		Number:         r.intField("pokedex_number"),
		Name:           r.str("name"),
		Generation:     r.intField("generation"),
		Status:         r.statusField("status"),
		Species:        r.str("species"),
		Type1:          r.str("type_1"),
		Type2:          r.str("type_2"),
		HeightM:        r.optFloatField("height_m"),
		WeightKg:       r.optFloatField("weight_kg"),
		Ability1:       r.str("ability_1"),
		Ability2:       r.str("ability_2"),
		AbilityHidden:  r.str("ability_hidden"),
		TotalPoints:    r.intField("total_points"),
		HP:             r.intField("hp"),
		Attack:         r.intField("attack"),
		Defense:        r.intField("defense"),
		SpAttack:       r.intField("sp_attack"),
		SpDefense:      r.intField("sp_defense"),
		Speed:          r.intField("speed"),
		CatchRate:      r.optIntField("catch_rate"),
		BaseFriendship: r.optIntField("base_friendship"),
		BaseExperience: r.optIntField("base_experience"),
		GrowthRate:     r.str("growth_rate"),
		EggType1:       r.str("egg_type_1"),
		EggType2:       r.str("egg_type_2"),
		PercentageMale: r.optFloatField("percentage_male"),
		EggCycles:      r.optIntField("egg_cycles"),
	}

	// type_number, abilities_number and egg_type_number are derivable
	// counts; parse them so bad values still fail the load.
	r.intField("type_number")
	r.intField("abilities_number")
	r.intField("egg_type_number")

	if r.err != nil {
		return Pokemon{}, r.err
	}
	if p.Name == "" {
		return Pokemon{}, &LoadError{Kind: KindEmptyName, Row: row, Column: "name"}
	}
	return p, nil
}
