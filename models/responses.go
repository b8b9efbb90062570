package models

// APIResponse is the uniform envelope used for plain status/error replies.
// Every error produced at the request boundary is converted to this shape.
type APIResponse struct {
	// Status is either "success" or "error".
	Status string `json:"status"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// AuthResponse is returned by the signup and signin endpoints on success.
type AuthResponse struct {
	Status string `json:"status"`

	// Token is the signed bearer token the client attaches to subsequent
	// requests in the "Authorization" header.
	Token string `json:"token"`

	Data AuthData `json:"data"`
}

// AuthData wraps the public projection of the authenticated user.
type AuthData struct {
	User User `json:"user"`
}

// LoanResponse is returned by the loan submission endpoint on success.
type LoanResponse struct {
	Message string       `json:"message"`
	Data    BusinessLoan `json:"data"`
}
