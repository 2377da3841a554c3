package httperr

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"pro-video-services/internal/domain/video"
	"pro-video-services/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternal = "Something went wrong"
	MsgNotFound = "Endpoint not found"
)

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg, Error: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort picks the status from the error kind. Client errors expose the error
// message; vendor failures use failMsg with the cause in "error"; everything
// else is reported as an internal error.
func Abort(c *gin.Context, err error, failMsg string) {
	status := StatusFor(err)
	switch {
	case status == http.StatusBadGateway:
		AbortWithError(c, status, err, failMsg, err.Error())
	case status < http.StatusInternalServerError || status == http.StatusServiceUnavailable:
		AbortWithError(c, status, err, PublicMessage(err), "")
	default:
		AbortWithError(c, status, err, MsgInternal, internalDetail(err))
	}
}

func StatusFor(err error) int {
	var genErr *video.GenerationError
	switch {
	case errs.Is(err, errs.ErrValidation),
		errs.Is(err, errs.ErrInvalidInput),
		errs.Is(err, errs.ErrUnsupportedProvider),
		errs.Is(err, errs.ErrInvalidSignature):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrSlotConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &genErr), errs.Is(err, errs.ErrGeneration):
		return http.StatusBadGateway
	case errs.Is(err, errs.ErrPaymentsDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage renders an error for API clients, sentence-cased.
func PublicMessage(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

func internalDetail(err error) string {
	if gin.Mode() == gin.DebugMode {
		return err.Error()
	}
	return "Internal server error"
}
