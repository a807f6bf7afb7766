package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"travelease/pkg/logger"
	"travelease/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type FlightValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewFlightValidator(log *logger.Logger) *FlightValidator {
	v := validator.New()

	if err := v.RegisterValidation("json_present", validateJSONPresent); err != nil {
		log.Fatal("Failed to register 'json_present' validator", "error", err)
	}

	log.Info("Flight validator initialized successfully")

	return &FlightValidator{
		validate: v,
		logger:   log,
	}
}

// validateJSONPresent accepts any JSON value except an absent field or null.
func validateJSONPresent(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func (v *FlightValidator) ValidateSearch(req *model.FlightSearchRequest) error {
	return v.check(req)
}

func (v *FlightValidator) ValidateOffer(req *model.FlightOfferRequest) error {
	return v.check(req)
}

func (v *FlightValidator) ValidateBooking(req *model.FlightBookingRequest) error {
	return v.check(req)
}

func (v *FlightValidator) check(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *FlightValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required", "json_present":
			message = fmt.Sprintf("%s is required", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
