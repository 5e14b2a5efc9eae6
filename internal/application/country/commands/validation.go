package commands

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

// FlagInput is the flag descriptor as submitted by the client
type FlagInput struct {
	BackgroundColor string `json:"backgroundColor" validate:"required"`
	Pattern         string `json:"pattern" validate:"required,flag_pattern"`
	PatternColor    string `json:"patternColor" validate:"required"`
}

// ToFlag converts the input to the domain value object
func (f *FlagInput) ToFlag() country.Flag {
	if f == nil {
		return country.Flag{}
	}
	return country.Flag{
		BackgroundColor: f.BackgroundColor,
		Pattern:         f.Pattern,
		PatternColor:    f.PatternColor,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("government", func(fl validator.FieldLevel) bool {
			return country.Government(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("country_value", func(fl validator.FieldLevel) bool {
			return country.Value(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("flag_pattern", func(fl validator.FieldLevel) bool {
			pattern := fl.Field().String()
			for _, known := range country.FlagPatterns {
				if pattern == known {
					return true
				}
			}
			return false
		})
		validate = v
	})
	return validate
}

// validationRank orders field errors so the client sees the same message
// regardless of which fields validator visits first. Lower wins.
func validationRank(fe validator.FieldError) int {
	inFlag := strings.Contains(fe.Namespace(), ".Flag.")
	switch {
	case fe.Tag() == "required" && !inFlag:
		return 0
	case fe.Tag() == "required" && inFlag:
		return 1
	case fe.Field() == "Values" && fe.Tag() == "min":
		return 2
	case fe.Field() == "Values" && fe.Tag() == "max":
		return 3
	case fe.Tag() == "government":
		return 4
	case fe.Tag() == "country_value":
		return 5
	case fe.Tag() == "flag_pattern":
		return 6
	default:
		return 7
	}
}

func validationMessage(fe validator.FieldError) *shared.ValidationError {
	switch validationRank(fe) {
	case 0:
		return shared.NewValidationError("", "All fields are required")
	case 1:
		return shared.NewValidationError("flag", "All flag properties are required")
	case 2:
		return shared.NewValidationError("values", "At least one value is required")
	case 3:
		return shared.NewValidationError("values", fmt.Sprintf("At most %d values are allowed", country.MaxValues))
	case 4:
		return shared.NewValidationError("government", "Invalid government type")
	case 5:
		return shared.NewValidationError("values", fmt.Sprintf("Invalid value: %v", fe.Value()))
	case 6:
		return shared.NewValidationError("flag", "Invalid flag pattern")
	default:
		return shared.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("%s is invalid", fe.Field()))
	}
}

// validateInput runs struct validation and reduces the result to one client-facing error
func validateInput(input interface{}) error {
	err := inputValidator().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	best := fieldErrs[0]
	for _, fe := range fieldErrs[1:] {
		if validationRank(fe) < validationRank(best) {
			best = fe
		}
	}
	return validationMessage(best)
}
