//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/handler/httperr"
	"pro-video-services/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.MarkNew(errs.ErrValidation, "name required"), want: http.StatusBadRequest},
		{name: "invalid input", err: errs.Mark(errors.New("bad date"), errs.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unsupported provider", err: errs.MarkNew(errs.ErrUnsupportedProvider, "unsupported provider: x"), want: http.StatusBadRequest},
		{name: "not found", err: errs.Wrap(errs.MarkNew(errs.ErrNotFound, "client not found"), "get client"), want: http.StatusNotFound},
		{name: "slot conflict", err: errs.MarkNew(errs.ErrSlotConflict, "taken"), want: http.StatusConflict},
		{name: "unauthorized", err: errs.MarkNew(errs.ErrUnauthorized, "nope"), want: http.StatusUnauthorized},
		{name: "generation", err: video.NewGenerationError("pika", errors.New("timeout")), want: http.StatusBadGateway},
		{name: "payments disabled", err: errs.MarkNew(errs.ErrPaymentsDisabled, "off"), want: http.StatusServiceUnavailable},
		{name: "anything else", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusFor(tt.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantError   string
	}{
		{
			name:        "client error exposes message",
			err:         errs.MarkNew(errs.ErrNotFound, "client not found"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Client not found",
		},
		{
			name:        "vendor failure keeps cause",
			err:         video.NewGenerationError("runway", errors.New("503")),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Video generation failed",
			wantError:   "video generation failed (runway): 503",
		},
		{
			name:        "internal error is masked",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: httperr.MsgInternal,
			wantError:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			httperr.Abort(c, tt.err, "Video generation failed")

			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
			if tt.wantError == "" {
				assert.NotContains(t, body, "error")
			} else {
				assert.Equal(t, tt.wantError, body["error"])
			}
		})
	}
}
