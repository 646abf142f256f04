package homework

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckResponse(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		_, err := CheckResponse(map[string]any{})
		require.ErrorIs(t, err, ErrMissingHomeworksKey)
		var malformed *MalformedResponseError
		assert.False(t, errors.As(err, &malformed))
	})

	t.Run("homeworks not a list", func(t *testing.T) {
		_, err := CheckResponse(map[string]any{"homeworks": "x"})
		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("not an object", func(t *testing.T) {
		for _, body := range []any{nil, "x", []any{}, json.Number("1")} {
			_, err := CheckResponse(body)
			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed, "body %v", body)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		got, err := CheckResponse(map[string]any{"homeworks": []any{}})
		require.NoError(t, err)
		assert.Equal(t, []any{}, got)
	})

	t.Run("list returned unchanged", func(t *testing.T) {
		list := []any{map[string]any{"homework_name": "hw1"}, "junk"}
		got, err := CheckResponse(map[string]any{"homeworks": list})
		require.NoError(t, err)
		assert.Equal(t, list, got)
	})
}

func TestRecord(t *testing.T) {
	t.Parallel()
	rec, err := Record(map[string]any{"status": "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", rec["status"])

	_, err = Record("hw1")
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
}

func TestCurrentDate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body any
		want int64
		ok   bool
	}{
		{name: "json number", body: map[string]any{"current_date": json.Number("100")}, want: 100, ok: true},
		{name: "float", body: map[string]any{"current_date": float64(200)}, want: 200, ok: true},
		{name: "fractional", body: map[string]any{"current_date": 1.5}},
		{name: "absent", body: map[string]any{"homeworks": []any{}}},
		{name: "string", body: map[string]any{"current_date": "100"}},
		{name: "not an object", body: []any{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentDate(tt.body)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
