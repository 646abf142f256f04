package homework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusVerdicts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status string
		want   string
	}{
		{status: "approved", want: `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`},
		{status: "reviewing", want: `Изменился статус проверки работы "hw1". Работа взята на проверку ревьюером.`},
		{status: "rejected", want: `Изменился статус проверки работы "hw1". Работа проверена: у ревьюера есть замечания.`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.status, func(t *testing.T) {
			got, err := ParseStatus(map[string]any{"homework_name": "hw1", "status": tt.status})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusUnknown(t *testing.T) {
	t.Parallel()
	for _, status := range []any{"", "done", "APPROVED", 42, nil} {
		_, err := ParseStatus(map[string]any{"homework_name": "hw1", "status": status})
		var unknown *UnknownStatusError
		require.ErrorAs(t, err, &unknown, "status %v", status)
		assert.Equal(t, status, unknown.Status)
	}
}

func TestParseStatusMissingField(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		record map[string]any
		field  string
	}{
		{name: "no name", record: map[string]any{"status": "approved"}, field: "homework_name"},
		{name: "no status", record: map[string]any{"homework_name": "hw1"}, field: "status"},
		{name: "empty", record: map[string]any{}, field: "homework_name"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatus(tt.record)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}
