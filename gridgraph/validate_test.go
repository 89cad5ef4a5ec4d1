package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trackrun/gridgraph"
)

// TestValidate covers every rejection path and its author-facing message.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		grid gridgraph.Grid
		err  error
		msg  string
	}{
		{"Empty", gridgraph.Grid{}, gridgraph.ErrEmptyGrid, "Grid must be non-empty"},
		{"Ragged", gridgraph.Grid{{"S", "F"}, {"1"}}, gridgraph.ErrNonRectangular, "All rows must have equal length"},
		{"BlankCell", gridgraph.Grid{{"S", " ", "F"}}, gridgraph.ErrEmptyCell, "Empty cell at (0,1)"},
		{"BadHead", gridgraph.Grid{{"S", "X", "F"}}, gridgraph.ErrInvalidToken, "Invalid token 'X' at (0,1)"},
		{"BadBare", gridgraph.Grid{{"S", "1"}, {"F", "11"}}, gridgraph.ErrInvalidToken, "Invalid token '11' at (1,1)"},
		{"NoStart", gridgraph.Grid{{"1", "F"}}, gridgraph.ErrStartCount, "There must be exactly one start 'S'"},
		{"TwoStarts", gridgraph.Grid{{"S", "S", "F"}}, gridgraph.ErrStartCount, "There must be exactly one start 'S'"},
		{"NoFlag", gridgraph.Grid{{"S", "1"}}, gridgraph.ErrNoFlags, "There must be at least one flag 'F'"},
		{"LoneTeleport", gridgraph.Grid{{"S", "T1", "F"}}, gridgraph.ErrTeleportCount, "Teleport T1 must appear exactly twice (found 1)"},
		{"TripleTeleport", gridgraph.Grid{{"TA", "S", "TA"}, {"F", "TA", "1"}}, gridgraph.ErrTeleportCount, "Teleport TA must appear exactly twice (found 3)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := gridgraph.Validate(tc.grid)
			require.ErrorIs(t, err, tc.err)
			var ve *gridgraph.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tc.msg, ve.Message)
		})
	}
}

// TestValidate_Accepts checks well-formed tracks, including padded tokens.
func TestValidate_Accepts(t *testing.T) {
	require.NoError(t, gridgraph.Validate(gridgraph.Grid{{"S", "F", "1"}}))
	require.NoError(t, gridgraph.Validate(gridgraph.Grid{
		{"S", "1", "T1", "0"},
		{"0", " 1", "1", "0"},
		{"T1", "F", "1", "TB"},
		{"1", "F", "0", "TB"},
	}))
}

// TestValidate_FirstBadLabel reports the first teleport label in scan order.
func TestValidate_FirstBadLabel(t *testing.T) {
	err := gridgraph.Validate(gridgraph.Grid{
		{"S", "TZ", "TA"},
		{"F", "TA", "1"},
	})
	require.ErrorIs(t, err, gridgraph.ErrTeleportCount)
	require.EqualError(t, err, "Teleport TZ must appear exactly twice (found 1)")
}

func TestNormalize(t *testing.T) {
	in := gridgraph.Grid{{" S", "F ", "\t1"}}
	out := gridgraph.Normalize(in)
	require.Equal(t, gridgraph.Grid{{"S", "F", "1"}}, out)
	require.Equal(t, " S", in[0][0], "input must be untouched")
	require.Equal(t, 1, gridgraph.CountFlags(out))
	require.Equal(t, 0, gridgraph.CountFlags(in))
}
