package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LoanProduct is a catalog entry. Products are maintained out-of-band;
// this service only reads them.
type LoanProduct struct {
	ProductId    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Type         string             `bson:"type" json:"type"`
	Description  string             `bson:"description" json:"description"`
	InterestRate float64            `bson:"interestRate" json:"interestRate"`
	MaxAmount    float64            `bson:"maxAmount" json:"maxAmount"`
	Tenure       int32              `bson:"tenure" json:"tenure"`
	ImageURL     string             `bson:"imgUrl" json:"imgUrl"`
}

// LoanProductSummary is the list view of a product. Rate, ceiling and
// tenure are intentionally withheld from listings.
type LoanProductSummary struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	ImageURL    string `json:"imgUrl"`
}

func (p LoanProduct) Summary() LoanProductSummary {
	return LoanProductSummary{
		Type:        p.Type,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}
