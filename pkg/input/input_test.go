package input

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/textplot/pkg/errors"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"1 2 3", []float64{1, 2, 3}},
		{"1,2, 3", []float64{1, 2, 3}},
		{" -1.5\t2e3;4 ", []float64{-1.5, 2000, 4}},
		{"", []float64{}},
		{",,", []float64{}},
	}
	for _, tt := range tests {
		got, err := ParseRow(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseRowSpecialValues(t *testing.T) {
	got, err := ParseRow("nan inf -inf")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsInf(got[1], 1))
	assert.True(t, math.IsInf(got[2], -1))
}

func TestParseRowError(t *testing.T) {
	_, err := ParseRow("1 two 3")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputParse))
	assert.Equal(t, "two", errors.GetErrorDetails(err)["token"])
	assert.False(t, errors.IsConfigError(err))
}

func TestParseArgs(t *testing.T) {
	got, err := ParseArgs([]string{"1", "2,3", "4"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)
}

func TestReadRows(t *testing.T) {
	in := strings.NewReader("# cpu\n1 2 3\n\n4,5\n  # idle\n6\n")
	rows, err := ReadRows(in)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5}, {6}}, rows)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, Flatten(rows))
}

func TestReadRowsReportsLine(t *testing.T) {
	_, err := ReadRows(strings.NewReader("1 2\n3 x\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputParse))
	assert.Equal(t, 2, errors.GetErrorDetails(err)["line"])
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadRowsEmpty(t *testing.T) {
	rows, err := ReadRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
