package video

import (
	"fmt"

	"pro-video-services/internal/pkg/errs"
)

// GenerationError reports a failed vendor call.
type GenerationError struct {
	Provider string
	Err      error
}

func NewGenerationError(provider string, err error) *GenerationError {
	return &GenerationError{Provider: provider, Err: err}
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("video generation failed (%s): %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == errs.ErrGeneration
}
