package domain

import "errors"

var (
	// ErrModelsUnavailable means no usable artifact bundle could be loaded.
	// Retryable: a later load attempt may succeed.
	ErrModelsUnavailable = errors.New("prediction models are not available")

	// ErrStreamNotFound means a stream could not be resolved to any catalog key.
	ErrStreamNotFound = errors.New("stream not found in course catalog")

	// ErrNoPredictions means every course/university pair in a batch failed.
	ErrNoPredictions = errors.New("no predictions could be generated")

	ErrSessionNotFound = errors.New("prediction session not found")
)

// ValidationError marks bad request input. Never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NotLoadedError marks a single missing bundle component (e.g. the classifier
// absent while the regressor loaded). The bundle is otherwise usable.
type NotLoadedError struct {
	Component string
}

func (e *NotLoadedError) Error() string {
	return e.Component + " not loaded"
}

func (e *NotLoadedError) Unwrap() error {
	return ErrModelsUnavailable
}

func IsNotLoadedError(err error) bool {
	var target *NotLoadedError
	return errors.As(err, &target)
}
