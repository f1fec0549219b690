package pricing

import (
	"errors"
	"fmt"

	"github.com/luxerent/pricing-service/internal/models"
)

// ErrMissingRate and ErrInvalidWindow are the engine's only two failure
// kinds. Anything else reaching the engine is a caller bug; the engine fails
// fast instead of clamping to a default price.
var (
	ErrMissingRate   = errors.New("missing rate")
	ErrInvalidWindow = errors.New("invalid window")
)

// MissingRateError means a duration tier was selected whose required rate
// unit is absent from the offering's catalog entry. Screens are expected to
// filter duration choices to what the catalog supports, so hitting this is a
// configuration error rather than user error.
type MissingRateError struct {
	OfferingID string
	Unit       models.RateUnit
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("offering %s has no %s rate", e.OfferingID, e.Unit)
}

func (e *MissingRateError) Unwrap() error { return ErrMissingRate }

// InvalidWindowError reports a window whose elapsed duration is not
// positive, or whose end date precedes its start date. Surfaced to the UI
// for correction; the action producing the price must stay blocked.
type InvalidWindowError struct {
	Reason string
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid booking window: %s", e.Reason)
}

func (e *InvalidWindowError) Unwrap() error { return ErrInvalidWindow }
