package parliament_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coalitions/parliament"
)

func toySeats() parliament.Seats {
	return parliament.Seats{"A": 40, "B": 35, "C": 30, "D": 15}
}

// TestSeats_Sum checks aggregation, unknown names and duplicates.
func TestSeats_Sum(t *testing.T) {
	s := toySeats()
	cases := []struct {
		name    string
		parties []string
		want    int
	}{
		{"Empty", nil, 0},
		{"Single", []string{"A"}, 40},
		{"Pair", []string{"A", "B"}, 75},
		{"All", []string{"A", "B", "C", "D"}, 120},
		{"UnknownIsZero", []string{"A", "Z"}, 40},
		{"DuplicateCountedOnce", []string{"B", "B"}, 35},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Sum(tc.parties))
		})
	}
}

// TestSeats_SumWithout mirrors the "remove one party" step of the evaluator.
func TestSeats_SumWithout(t *testing.T) {
	s := toySeats()
	members := []string{"A", "B", "C"}
	assert.Equal(t, 65, s.SumWithout(members, "A"))
	assert.Equal(t, 70, s.SumWithout(members, "B"))
	assert.Equal(t, 75, s.SumWithout(members, "C"))
	assert.Equal(t, 105, s.SumWithout(members, "D"), "removing a non-member leaves the sum intact")
	assert.Equal(t, []string{"A", "B", "C"}, members, "input slice must not be mutated")
}

// TestSeats_TotalAndParties checks the whole-table helpers.
func TestSeats_TotalAndParties(t *testing.T) {
	s := toySeats()
	assert.Equal(t, 120, s.Total())
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.Parties())
	assert.True(t, s.Has("D"))
	assert.False(t, s.Has("E"))
}

// TestSeats_Validate reports negative counts and empty names.
func TestSeats_Validate(t *testing.T) {
	require.NoError(t, toySeats().Validate())

	err := parliament.Seats{"A": -1, "": 3}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, parliament.ErrNegativeSeats)
	assert.ErrorIs(t, err, parliament.ErrEmptyPartyName)

	var ve *parliament.ValidationError
	require.True(t, errors.As(err, &ve))
}

// TestPartners_ValidateAndParties checks the partner universe.
func TestPartners_ValidateAndParties(t *testing.T) {
	p := parliament.Partners{"A": {"B", "C"}, "D": nil, "E": {"A"}}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, p.Parties())

	err := p.Validate(toySeats())
	require.Error(t, err)
	assert.ErrorIs(t, err, parliament.ErrUnknownPartner)
	assert.Contains(t, err.Error(), `"E"`)
}

// TestMajority covers the threshold helper.
func TestMajority(t *testing.T) {
	assert.Equal(t, 61, parliament.Majority(120))
	assert.Equal(t, 51, parliament.Majority(101))
	assert.Equal(t, 2, parliament.Majority(2))
	assert.Equal(t, parliament.DefaultMajority, parliament.Majority(0))
	assert.Equal(t, 61, parliament.DefaultMajority)
}

const toyYAML = `
name: toy
legislature: 120
seats:
  A: 40
  B: 35
  C: 30
  D: 15
partners:
  A: [B, C]
  B: [A, C]
  C: [A, B]
  D: []
`

// TestParseScenario decodes YAML and derives the threshold.
func TestParseScenario(t *testing.T) {
	sc, err := parliament.ParseScenario([]byte(toyYAML))
	require.NoError(t, err)
	assert.Equal(t, "toy", sc.Name)
	assert.Equal(t, toySeats(), sc.Seats)
	assert.Equal(t, []string{"B", "C"}, sc.Partners["A"])
	assert.Equal(t, 120, sc.Size())
	assert.Equal(t, 61, sc.Threshold())
	require.NoError(t, sc.Validate())
}

// TestParseScenario_Defaults fills empty maps and default sizes.
func TestParseScenario_Defaults(t *testing.T) {
	sc, err := parliament.ParseScenario([]byte("name: empty\n"))
	require.NoError(t, err)
	assert.NotNil(t, sc.Seats)
	assert.NotNil(t, sc.Partners)
	assert.Equal(t, parliament.DefaultLegislature, sc.Size())
	assert.Equal(t, parliament.DefaultMajority, sc.Threshold())

	sc.Majority = 70
	assert.Equal(t, 70, sc.Threshold())
}

// TestParseScenario_BadYAML surfaces decoder errors.
func TestParseScenario_BadYAML(t *testing.T) {
	_, err := parliament.ParseScenario([]byte("seats: [not, a, map"))
	require.Error(t, err)
}

// TestScenario_Validate collects every violation.
func TestScenario_Validate(t *testing.T) {
	sc := &parliament.Scenario{
		Legislature: 10,
		Majority:    11,
		Seats:       parliament.Seats{"A": 8, "B": 5},
		Partners:    parliament.Partners{"A": {"X"}},
	}
	err := sc.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, parliament.ErrBadLegislature)
	assert.ErrorIs(t, err, parliament.ErrSeatOverflow)
	assert.ErrorIs(t, err, parliament.ErrUnknownPartner)
}

// TestLoadScenario reads a scenario from disk.
func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toyYAML), 0o644))

	sc, err := parliament.LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 120, sc.Seats.Total())

	_, err = parliament.LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
