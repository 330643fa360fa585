package models

// InterestQuote is the result of a simple-interest calculation. Nothing is
// persisted for a quote.
type InterestQuote struct {
	TotalAmount float64 `json:"totalAmount"`
	Interest    float64 `json:"interest"`
	LoanAmount  float64 `json:"loanAmount"`
	Tenure      int32   `json:"tenure"`
}
