package services

import (
	"fmt"
	"lendkart/loan_broker/internal/pkg/models"
	"lendkart/loan_broker/internal/pkg/utils"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationService checks the shape of enquiry and registration payloads
// before they reach business logic. It is a pure check: nothing is written
// on failure, and the first violated constraint is reported as a
// human-readable message.
type ValidationService struct {
	validate *validator.Validate
}

func NewValidationService() *ValidationService {
	validate := validator.New()
	_ = validate.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return utils.IsValidMobile(fl.Field().Int())
	})
	return &ValidationService{validate: validate}
}

func (s *ValidationService) ValidateEnquiry(payload models.EnquiryPayload) error {
	return s.firstViolation(s.validate.Struct(payload))
}

func (s *ValidationService) ValidateRegistration(payload models.RegistrationPayload) error {
	return s.firstViolation(s.validate.Struct(payload))
}

func (s *ValidationService) firstViolation(err error) error {
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return &models.CustomError{
			Code:    "LOANBROKER_VALIDATION_PAYLOAD_INVALID",
			Message: err.Error(),
		}
	}

	first := validationErrors[0]
	return &models.CustomError{
		Code:    "LOANBROKER_VALIDATION_" + strings.ToUpper(first.Field()) + "_INVALID",
		Message: violationMessage(first),
	}
}

func violationMessage(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "mobile":
		return fmt.Sprintf("%s must be a valid 10-digit mobile number", field)
	default:
		return fmt.Sprintf("%s failed validation on %s", field, fieldError.Tag())
	}
}
