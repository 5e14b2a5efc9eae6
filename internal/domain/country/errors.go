package country

import (
	"errors"
	"fmt"

	"github.com/andrescamacho/nations-go/internal/domain/building"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// AdmissionReason identifies why a construction request was refused
type AdmissionReason string

const (
	ReasonInvalidBuildingType    AdmissionReason = "INVALID_BUILDING_TYPE"
	ReasonInsufficientPopulation AdmissionReason = "INSUFFICIENT_POPULATION"
	ReasonInsufficientEconomy    AdmissionReason = "INSUFFICIENT_ECONOMY"
	ReasonCannotAfford           AdmissionReason = "CANNOT_AFFORD"
)

var admissionMessages = map[AdmissionReason]string{
	ReasonInvalidBuildingType:    "Invalid building type",
	ReasonInsufficientPopulation: "Insufficient population",
	ReasonInsufficientEconomy:    "Insufficient economy",
	ReasonCannotAfford:           "Cannot afford building",
}

// AdmissionError is a domain-level rejection of a construction request.
// The player may retry once resources have accumulated.
type AdmissionError struct {
	Reason       AdmissionReason
	BuildingType building.Type
	Required     int
	Available    int
}

// Message returns the client-facing text for the reason
func (e *AdmissionError) Message() string {
	if msg, ok := admissionMessages[e.Reason]; ok {
		return msg
	}
	return string(e.Reason)
}

func (e *AdmissionError) Error() string {
	if e.Reason == ReasonInvalidBuildingType {
		return fmt.Sprintf("%s: %q", e.Message(), e.BuildingType)
	}
	return fmt.Sprintf("%s for %s: required %d, available %d", e.Message(), e.BuildingType, e.Required, e.Available)
}

// IsAdmissionError reports whether err wraps an AdmissionError
func IsAdmissionError(err error) bool {
	var target *AdmissionError
	return errors.As(err, &target)
}

// Founding conflicts, reported to the caller as validation errors
var (
	ErrAlreadyHasCountry = shared.NewValidationError("", "User already has a country")
	ErrNameTaken         = shared.NewValidationError("name", "Country name already exists")
)
