package format

import (
	"bytes"
	"math"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleAnswers = []Answer{
	{Name: "x", Type: "int", Value: 42},
	{Name: "y", Type: "float64", Value: 3.14},
	{Name: "s", Type: "string", Value: "foo"},
}

func TestLookup(t *testing.T) {
	for _, m := range Modes() {
		f, err := Lookup(strings.ToUpper(string(m)))
		require.NoError(t, err, "mode %s", m)
		assert.NotNil(t, f)
	}

	_, err := Lookup("csv")
	assert.EqualError(t, err, "invalid format: csv (valid: text, json, yaml, table, template)")
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatText(&buf, sampleAnswers, Config{}))
	assert.Equal(t, "x = 42, y = 3.14, s = foo\n", buf.String())

	buf.Reset()
	require.NoError(t, formatText(&buf, []Answer{{Name: "n", Type: "int", Value: nil}}, Config{}))
	assert.Equal(t, "n = NULL\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	answers := append(sampleAnswers[:2:2], Answer{Name: "ratio", Type: "float64", Value: 0.0, Defaulted: true})

	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, answers, Config{}))
	assert.JSONEq(t, `[
		{"name": "x", "type": "int", "value": 42},
		{"name": "y", "type": "float64", "value": 3.14},
		{"name": "ratio", "type": "float64", "value": 0, "defaulted": true}
	]`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatYAML(&buf, sampleAnswers[:1], Config{}))
	want := "- name: x\n  type: int\n  value: 42\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("yaml output mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatTable(&buf, sampleAnswers, Config{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "+"), "table should start with a border:\n%s", out)
	for _, s := range []string{"NAME", "TYPE", "VALUE", "3.14", "foo"} {
		assert.Contains(t, out, s)
	}
}

func TestFormatTemplate(t *testing.T) {
	t.Run("renders answers", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := Config{Template: `{{range .}}{{.Name | toUpper}}={{.Value}};{{end}}`}
		require.NoError(t, formatTemplate(&buf, sampleAnswers, cfg))
		assert.Equal(t, "X=42;Y=3.14;S=foo;", buf.String())
	})

	t.Run("missing template", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, formatTemplate(&buf, sampleAnswers, Config{}), errNoTemplate)
	})

	t.Run("execution error writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		err := formatTemplate(&buf, sampleAnswers, Config{Template: `partial {{index . 10}}`})
		assert.Error(t, err)
		assert.Zero(t, buf.Len())
	})
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{42, 42},
		{true, true},
		{90 * time.Second, "1m30s"},
		{netip.MustParseAddr("::1"), "::1"},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
		{math.Inf(1), "+Inf"},
		{float32(1.5), float32(1.5)},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Display(tt.in)); diff != "" {
			t.Errorf("Display(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
