package consts

const (
	WelcomeMessage             = "Welcome to the LendKart loan broker service"
	EnquirySubmittedMessage    = "Thank you for your enquiry. Our team will contact you shortly."
	MemberRegisteredMessage    = "Registration successful. Welcome aboard!"
	RemittanceApprovedMessage  = "Remittance of %.2f approved. Reference number: %s"
	EnquiryUpdatedMessage      = "Loan enquiry updated successfully"
	EnquiryDeletedMessage      = "Loan enquiry deleted successfully"
	PasswordUpdatedMessage     = "Password updated successfully"
	MembershipCancelledMessage = "Membership cancelled successfully"
)

// SensitiveKeys lists header and payload keys masked in request logs.
var SensitiveKeys = []string{
	"Authorization",
	"Cookie",
	"password",
	"createpassword",
}
