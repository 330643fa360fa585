package tests

import (
	"testing"

	"lendkart/loan_broker/internal/pkg/models"
	"lendkart/loan_broker/internal/pkg/services"

	"github.com/stretchr/testify/assert"
)

func validEnquiry() models.EnquiryPayload {
	return models.EnquiryPayload{
		Mobile: 9876543210,
		Email:  "applicant@example.com",
		Amount: 250000,
		Type:   "personal",
	}
}

func validRegistration() models.RegistrationPayload {
	return models.RegistrationPayload{
		Mobile:         9876543210,
		Email:          "member@example.com",
		Occupation:     "engineer",
		CreatePassword: "s3cret-pass",
	}
}

func TestValidateEnquiry(t *testing.T) {
	service := services.NewValidationService()

	tests := []struct {
		name            string
		mutate          func(*models.EnquiryPayload)
		expectedMessage string
	}{
		{
			name:   "Valid Payload",
			mutate: func(p *models.EnquiryPayload) {},
		},
		{
			name:   "Optional Fields May Be Empty",
			mutate: func(p *models.EnquiryPayload) { p.Message = ""; p.Code = "" },
		},
		{
			name:            "Missing Mobile",
			mutate:          func(p *models.EnquiryPayload) { p.Mobile = 0 },
			expectedMessage: "mobile is required",
		},
		{
			name:            "Malformed Mobile",
			mutate:          func(p *models.EnquiryPayload) { p.Mobile = 123 },
			expectedMessage: "mobile must be a valid 10-digit mobile number",
		},
		{
			name:            "Invalid Email",
			mutate:          func(p *models.EnquiryPayload) { p.Email = "not-an-email" },
			expectedMessage: "email must be a valid email address",
		},
		{
			name:            "Missing Amount",
			mutate:          func(p *models.EnquiryPayload) { p.Amount = 0 },
			expectedMessage: "amount is required",
		},
		{
			name:            "Missing Type",
			mutate:          func(p *models.EnquiryPayload) { p.Type = "" },
			expectedMessage: "type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validEnquiry()
			tt.mutate(&payload)

			err := service.ValidateEnquiry(payload)

			if tt.expectedMessage == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedMessage)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	service := services.NewValidationService()

	tests := []struct {
		name            string
		mutate          func(*models.RegistrationPayload)
		expectedMessage string
	}{
		{
			name:   "Valid Payload",
			mutate: func(p *models.RegistrationPayload) {},
		},
		{
			name:            "Missing Occupation",
			mutate:          func(p *models.RegistrationPayload) { p.Occupation = "" },
			expectedMessage: "occupation is required",
		},
		{
			name:            "Missing Password",
			mutate:          func(p *models.RegistrationPayload) { p.CreatePassword = "" },
			expectedMessage: "createpassword is required",
		},
		{
			name:            "Invalid Email",
			mutate:          func(p *models.RegistrationPayload) { p.Email = "nope" },
			expectedMessage: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegistration()
			tt.mutate(&payload)

			err := service.ValidateRegistration(payload)

			if tt.expectedMessage == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedMessage)
			}
		})
	}
}
