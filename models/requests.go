package models

// SignupRequest is the JSON body of POST /api/signup.
type SignupRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	AccountType string `json:"accountType"`

	// Password is the plaintext password supplied by the client.
	// It is hashed immediately by the auth service and never stored
	// or logged in plaintext.
	Password string `json:"password"`
}

// SigninRequest is the JSON body of POST /api/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitLoanRequest is the JSON body of POST /api/submit-business-loan.
// ApplicantID is intentionally absent: it always comes from the
// authenticated request context.
type SubmitLoanRequest struct {
	BusinessName        string  `json:"businessName"`
	BusinessType        string  `json:"businessType"`
	YearsFounded        int     `json:"yearsFounded"`
	AnnualRevenue       float64 `json:"annualRevenue"`
	LoanAmount          float64 `json:"loanAmount"`
	Duration            int     `json:"duration"`
	Description         string  `json:"description"`
	SustainabilityGoals string  `json:"sustainabilityGoals"`
}
