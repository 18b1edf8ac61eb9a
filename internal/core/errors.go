package core

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable is returned for every inference while the model failed to load
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrInvalidInput is returned when a required field is missing or empty
	ErrInvalidInput = errors.New("invalid input")
	// ErrInference is returned when the classifier fails on a well-formed input
	ErrInference = errors.New("inference error")
	// ErrNoData is returned by analytics when the history is empty
	ErrNoData = errors.New("no predictions available")
	// ErrArtifactNotFound is returned by a ModelStore for a missing blob
	ErrArtifactNotFound = errors.New("model artifact not found")
)

// UnavailableClassifier stands in for a model that could not be loaded.
// Every call fails with ErrModelUnavailable wrapping the load failure.
type UnavailableClassifier struct {
	Cause error
}

// NewUnavailableClassifier creates a classifier that always reports cause
func NewUnavailableClassifier(cause error) *UnavailableClassifier {
	return &UnavailableClassifier{Cause: cause}
}

// Predict always fails
func (u *UnavailableClassifier) Predict(ctx context.Context, text string) (Distribution, error) {
	return Distribution{}, u.Ready()
}

// Name returns a placeholder model name
func (u *UnavailableClassifier) Name() string {
	return "unavailable"
}

// Ready reports the load failure
func (u *UnavailableClassifier) Ready() error {
	if u.Cause == nil {
		return ErrModelUnavailable
	}
	return fmt.Errorf("%w: %v", ErrModelUnavailable, u.Cause)
}
