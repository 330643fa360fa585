package consts

import "lendkart/loan_broker/internal/pkg/models"

var (
	ErrorNoServicesFound = &models.CustomError{
		Code:    "LOANBROKER_CATALOG_NO_SERVICES_FOUND",
		Message: "No loan services found",
	}
	ErrorServiceNotFound = &models.CustomError{
		Code:    "LOANBROKER_CATALOG_SERVICE_NOT_FOUND",
		Message: "Loan service not found",
	}
	ErrorEnquiryNotFound = &models.CustomError{
		Code:    "LOANBROKER_ENQUIRY_NOT_FOUND",
		Message: "No loan enquiry found for the given mobile number",
	}
	ErrorMemberNotFound = &models.CustomError{
		Code:    "LOANBROKER_MEMBER_NOT_FOUND",
		Message: "No member found for the given mobile number",
	}
	ErrorInvalidCalculationInput = &models.CustomError{
		Code:    "LOANBROKER_CALCULATE_VALIDATION_AMOUNT_OR_TENURE_INVALID",
		Message: "Loan amount and tenure are required and must be greater than zero",
	}
	ErrorMissingRemittanceFields = &models.CustomError{
		Code:    "LOANBROKER_REMITTANCE_VALIDATION_AMOUNT_OR_MOBILE_MISSING",
		Message: "Remittance amount and mobile number are required",
	}
	ErrorNoUpdatableFields = &models.CustomError{
		Code:    "LOANBROKER_UPDATE_VALIDATION_NO_UPDATABLE_FIELDS",
		Message: "No updatable fields supplied",
	}
	ErrorEnquiryWriteFailed = &models.CustomError{
		Code:    "LOANBROKER_ENQUIRY_WRITE_FAILED",
		Message: "Failed to save loan enquiry",
	}
	ErrorMemberWriteFailed = &models.CustomError{
		Code:    "LOANBROKER_MEMBER_WRITE_FAILED",
		Message: "Failed to save member record",
	}
	ErrorPasswordHashFailed = &models.CustomError{
		Code:    "LOANBROKER_MEMBER_PASSWORD_HASH_FAILED",
		Message: "Failed to secure the supplied password",
	}
	ErrorStoreReadFailed = &models.CustomError{
		Code:    "LOANBROKER_INTERNAL_ERROR_STORE_READ_FAILED",
		Message: "Failed to read from the document store",
	}
)
