package consts

const (
	// ValidMobileNumber matches a 10-digit subscriber number, optionally
	// prefixed with 0 or the country code 91.
	ValidMobileNumber = `^(91|0)?[1-9]\d{9}$`
)
