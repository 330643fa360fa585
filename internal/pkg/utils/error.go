package utils

import "lendkart/loan_broker/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "LOANBROKER_INTERNAL_ERROR"
}
