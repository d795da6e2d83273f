package rutkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("all formats", func(t *testing.T) {
		cases := []struct {
			number uint32
			format rutkit.Format
			want   string
		}{
			{5665328, rutkit.FormatDots, "5.665.328-7"},
			{5665328, rutkit.FormatDash, "5665328-7"},
			{5665328, rutkit.FormatNone, "56653287"},
			{17951585, rutkit.FormatDots, "17.951.585-7"},
			{17951585, rutkit.FormatDash, "17951585-7"},
			{17951585, rutkit.FormatNone, "179515857"},
			{1000005, rutkit.FormatDots, "1.000.005-K"},
		}

		for _, tc := range cases {
			rut, err := rutkit.FromNumber(tc.number)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rut.Render(tc.format), "number %d format %q", tc.number, tc.format)
		}
	})

	t.Run("unknown format falls back to dash", func(t *testing.T) {
		rut := rutkit.MustParse("17951585-7")
		assert.Equal(t, "17951585-7", rut.Render(rutkit.Format("csv")))
		assert.Equal(t, "17951585-7", rut.Render(rutkit.Format("")))
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	rut := rutkit.MustParse("17.951.585-7")
	assert.Equal(t, "17951585-7", rut.String())
	assert.Equal(t, rut.Render(rutkit.FormatDash), rut.String())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	t.Run("known formats", func(t *testing.T) {
		cases := []struct {
			input string
			want  rutkit.Format
		}{
			{"dots", rutkit.FormatDots},
			{"DOTS", rutkit.FormatDots},
			{"dash", rutkit.FormatDash},
			{"Dash", rutkit.FormatDash},
			{"none", rutkit.FormatNone},
		}

		for _, tc := range cases {
			got, err := rutkit.ParseFormat(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := rutkit.ParseFormat("csv")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "csv")
	})
}

func TestFormatIdempotence(t *testing.T) {
	t.Parallel()

	formats := []rutkit.Format{rutkit.FormatDots, rutkit.FormatDash, rutkit.FormatNone}
	inputs := []string{"17951585-7", "5.665.328-7", "241367738", "1.000.005-K"}

	for _, input := range inputs {
		rut := rutkit.MustParse(input)
		for _, format := range formats {
			rendered := rut.Render(format)

			reparsed, err := rutkit.Parse(rendered)
			require.NoError(t, err, "rendered %q", rendered)
			assert.Equal(t, rendered, reparsed.Render(format), "input %q format %q", input, format)
		}
	}
}
