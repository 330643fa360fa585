package utils

import (
	"lendkart/loan_broker/internal/pkg/consts"
	"regexp"
	"strconv"
)

var mobileRegex = regexp.MustCompile(consts.ValidMobileNumber)

// IsValidMobile reports whether the number is a plausible 10-digit mobile
// number, optionally carrying a 0 or 91 prefix.
func IsValidMobile(mobile int64) bool {
	if mobile <= 0 {
		return false
	}
	return mobileRegex.MatchString(strconv.FormatInt(mobile, 10))
}
