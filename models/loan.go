package models

import "time"

// BusinessLoan is a business-loan application submitted by an authenticated
// user through the dashboard.
type BusinessLoan struct {
	// ID is the opaque unique identifier of the application, assigned at
	// creation. Generated server-side as a UUID.
	ID string `json:"id"`

	// ApplicantID references the user who submitted the application.
	// It is taken from the authenticated request context, never from the
	// request body.
	ApplicantID string `json:"applicantId"`

	// BusinessName is the legal name of the applying business.
	BusinessName string `json:"businessName"`

	// BusinessType categorises the business (e.g. "agriculture", "retail").
	BusinessType string `json:"businessType"`

	// YearsFounded is the year the business was established.
	YearsFounded int `json:"yearsFounded"`

	// AnnualRevenue is the self-reported yearly revenue.
	AnnualRevenue float64 `json:"annualRevenue"`

	// LoanAmount is the requested principal.
	LoanAmount float64 `json:"loanAmount"`

	// Duration is the requested repayment period in months.
	Duration int `json:"duration"`

	// Description explains what the loan will fund.
	Description string `json:"description"`

	// SustainabilityGoals is an optional free-text statement of the
	// environmental goals the funded activity supports.
	SustainabilityGoals string `json:"sustainabilityGoals,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the BusinessLoan model.
func (l BusinessLoan) TableName() string {
	return "business_loans"
}

// LoanFilter narrows and pages a loan application listing.
// Zero values mean "no constraint".
type LoanFilter struct {
	// ApplicantID restricts the listing to a single user's applications.
	ApplicantID string

	// BusinessType restricts the listing to one business category.
	BusinessType string

	// Limit caps the number of returned rows; 0 means no cap.
	Limit uint64

	// Offset skips that many rows from the start of the result set.
	Offset uint64
}
