package output

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{"text", ModeText},
		{"JSON", ModeJSON},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"csv", ModeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.in))
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto tty", ModeAuto, true, ModeText},
		{"auto pipe", ModeAuto, false, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"explicit text", ModeText, false, ModeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestTable(t *testing.T) {
	header := []string{"id", "name"}
	rows := [][]string{{"1", "Brick"}, {"2", "Plate"}}

	t.Run("text", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)
		r.Table(header, rows)
		assert.Contains(t, out.String(), "Brick")
		assert.Contains(t, out.String(), "┌")
		assert.Contains(t, out.String(), "(2 rows)")
	})

	t.Run("markdown", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeAuto)
		r.Table(header, rows)
		assert.Contains(t, out.String(), "Plate |")
		assert.Contains(t, out.String(), "| ---")
		assert.NotContains(t, out.String(), "┌")
	})

	t.Run("empty", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, true, ModeText)
		r.Table(header, nil)
		assert.Equal(t, "(0 rows)\n", out.String())
	})
}

func TestJSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"rows": 3}))
	assert.JSONEq(t, `{"rows": 3}`, out.String())
}

func TestStylesWithoutTTY(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Println(r.Styles().Status("present"), r.Styles().Status("missing"))
	r.Warning("column not present")

	assert.Equal(t, "present missing\n", out.String())
	assert.False(t, ansiPattern.MatchString(errOut.String()))
	assert.Contains(t, errOut.String(), "warning: column not present")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Tables", FormatHeader(2, "Tables"))
	assert.Equal(t, "- **Rows**: 3", FormatKeyValue("Rows", "3"))
}
