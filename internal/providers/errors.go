package providers

import "errors"

// ErrEmptyCompletion is returned when the model responds with no choices
var ErrEmptyCompletion = errors.New("model returned no completion choices")
