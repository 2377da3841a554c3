//go:build unit

package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"pro-video-services/internal/domain/booking"
	"pro-video-services/internal/infra/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) booking.Date {
	t.Helper()
	d, err := booking.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestLoad(t *testing.T) {
	t.Run("success: empty path yields default template", func(t *testing.T) {
		tpl, err := template.Load("")
		require.NoError(t, err)
		assert.Equal(t, booking.DefaultWeeklyTemplate(), tpl)
	})

	t.Run("success: file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "availability.yaml")
		require.NoError(t, os.WriteFile(path, []byte("weekdays:\n  Saturday: [\"10:00\", \"9:30\"]\n"), 0o600))

		tpl, err := template.Load(path)
		require.NoError(t, err)

		// 2024-03-16 is a Saturday, 2024-03-11 a Monday
		assert.Equal(t, []booking.Slot{"10:00", "09:30"}, tpl.SlotsFor(mustDate(t, "2024-03-16")))
		assert.Empty(t, tpl.SlotsFor(mustDate(t, "2024-03-11")))
	})

	t.Run("error: missing file", func(t *testing.T) {
		_, err := template.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "error: not yaml", raw: "weekdays: [unclosed"},
		{name: "error: no weekdays", raw: "weekdays: {}\n"},
		{name: "error: unknown weekday", raw: "weekdays:\n  funday: [\"09:00\"]\n"},
		{name: "error: bad slot", raw: "weekdays:\n  monday: [\"nine\"]\n"},
		{name: "error: duplicate slot", raw: "weekdays:\n  monday: [\"09:00\", \"9:00\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := template.Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
