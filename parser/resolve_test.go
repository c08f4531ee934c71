package parser_test

import (
	"log/slog"
	"math/big"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/tinyinput/parser"
)

type port uint16

type username string

type level int8

func parseWith[T any](t *testing.T, input string) (T, error) {
	t.Helper()
	p, ok := parser.For[T]()
	require.True(t, ok, "parser.For should resolve %T", *new(T))
	return p.ParseAndValidate(input)
}

func TestFor(t *testing.T) {
	t.Run("builtin scalars", func(t *testing.T) {
		s, err := parseWith[string](t, "")
		require.NoError(t, err)
		assert.Equal(t, "", s)

		i, err := parseWith[int](t, "42")
		require.NoError(t, err)
		assert.Equal(t, 42, i)

		f, err := parseWith[float64](t, "3.14")
		require.NoError(t, err)
		assert.Equal(t, 3.14, f)

		b, err := parseWith[bool](t, "true")
		require.NoError(t, err)
		assert.True(t, b)

		d, err := parseWith[time.Duration](t, "1m30s")
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, d)

		raw, err := parseWith[[]byte](t, "abc")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), raw)

		c, err := parseWith[complex64](t, "2i")
		require.NoError(t, err)
		assert.Equal(t, complex64(2i), c)
	})

	t.Run("sized integers reject overflow", func(t *testing.T) {
		_, err := parseWith[int8](t, "300")
		assert.Error(t, err)

		_, err = parseWith[uint8](t, "-1")
		assert.Error(t, err)

		v, err := parseWith[uint32](t, "4294967295")
		require.NoError(t, err)
		assert.Equal(t, uint32(4294967295), v)
	})

	t.Run("big numbers", func(t *testing.T) {
		n, err := parseWith[*big.Int](t, "123456789012345678901234567890")
		require.NoError(t, err)
		assert.Equal(t, "123456789012345678901234567890", n.String())

		_, err = parseWith[*big.Int](t, "12x")
		assert.Error(t, err)

		f, err := parseWith[*big.Float](t, "1.5")
		require.NoError(t, err)
		assert.Equal(t, "1.5", f.Text('f', 1))
	})

	t.Run("text unmarshalers", func(t *testing.T) {
		addr, err := parseWith[netip.Addr](t, "192.0.2.1")
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("192.0.2.1"), addr)

		_, err = parseWith[netip.Addr](t, "192.0.2")
		assert.Error(t, err)

		lvl, err := parseWith[slog.Level](t, "warn")
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, lvl)

		ts, err := parseWith[time.Time](t, "2024-01-02T03:04:05Z")
		require.NoError(t, err)
		assert.True(t, ts.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

		r, err := parseWith[big.Rat](t, "3/4")
		require.NoError(t, err)
		assert.Equal(t, "3/4", r.String())
	})

	t.Run("named types by kind", func(t *testing.T) {
		p, err := parseWith[port](t, "8080")
		require.NoError(t, err)
		assert.Equal(t, port(8080), p)

		_, err = parseWith[port](t, "70000")
		assert.Error(t, err)

		u, err := parseWith[username](t, "gopher")
		require.NoError(t, err)
		assert.Equal(t, username("gopher"), u)

		l, err := parseWith[level](t, " -3 ")
		require.NoError(t, err)
		assert.Equal(t, level(-3), l)
	})

	t.Run("unsupported types", func(t *testing.T) {
		_, ok := parser.For[struct{ A int }]()
		assert.False(t, ok)

		_, ok = parser.For[[]int]()
		assert.False(t, ok)

		_, ok = parser.For[any]()
		assert.False(t, ok)

		assert.Panics(t, func() { parser.MustFor[map[string]int]() })
	})
}
