package ipc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTriState(t *testing.T) {
	type payload struct {
		Name Optional[string] `json:"name"`
	}

	t.Run("omitted field stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Name.Set)
		assert.False(t, p.Name.HasValue())
	})

	t.Run("explicit null is set but carries no value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &p))
		assert.True(t, p.Name.Set)
		assert.True(t, p.Name.Null)
		assert.False(t, p.Name.HasValue())
	})

	t.Run("value is carried through", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Alice"}`), &p))
		assert.True(t, p.Name.HasValue())
		assert.Equal(t, "Alice", p.Name.Value)
	})

	t.Run("wrong type is recorded, not raised", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":42}`), &p))
		assert.True(t, p.Name.Set)
		assert.True(t, p.Name.Malformed)
		assert.False(t, p.Name.HasValue())
	})
}

func TestOptionalConstructors(t *testing.T) {
	some := Some("hello")
	assert.True(t, some.HasValue())
	assert.Equal(t, "hello", some.Value)

	null := Null[string]()
	assert.True(t, null.Set)
	assert.True(t, null.Null)
	assert.False(t, null.HasValue())
}

func TestDateTimeCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339 with zone",
			in:   `"2025-06-15T10:00:00+01:00"`,
			want: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 utc",
			in:   `"2025-06-15T10:00:00Z"`,
			want: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "zoneless timestamp",
			in:   `"2025-06-15T10:00:00"`,
			want: time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "plain date",
			in:   `"2012-03-15"`,
			want: time.Date(2012, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "epoch seconds",
			in:   `1750000000`,
			want: time.Unix(1750000000, 0).UTC(),
		},
		{
			name: "epoch milliseconds",
			in:   `1750000000000`,
			want: time.UnixMilli(1750000000000).UTC(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d DateTime
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			assert.False(t, d.Malformed)
			assert.True(t, tc.want.Equal(d.Time), "got %v want %v", d.Time, tc.want)
			assert.Equal(t, time.UTC, d.Time.Location())
		})
	}
}

func TestDateTimeMalformed(t *testing.T) {
	for _, in := range []string{`"yesterday"`, `"15/03/2012"`, `true`, `null`, `{}`} {
		var d DateTime
		require.NoError(t, json.Unmarshal([]byte(in), &d))
		assert.True(t, d.Malformed, "input %s should be malformed", in)
	}
}
