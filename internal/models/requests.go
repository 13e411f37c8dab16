package models

// TransactionRequest represents the JSON body for creating a transaction
// swagger:model TransactionRequest
type TransactionRequest struct {
	// Amount, must be non-zero
	// required: true
	// example: 12.5
	Amount float64 `json:"amount"`

	// Description
	// required: true
	// example: Groceries
	Desc string `json:"desc"`

	// Debit flag, defaults to true
	// example: true
	IsDebit *bool `json:"is_Debit"`
}

// TransactionResponse wraps a created or deleted transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	Result  *Transaction `json:"result"`
	Message string       `json:"message"`
}

// ContactRequest represents the JSON body of the public contact form
// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ContactResponse wraps a deleted contact
// swagger:model ContactResponse
type ContactResponse struct {
	Result  *Contact `json:"result"`
	Message string   `json:"message"`
}

// KeyRequest asks for a password reset key
// swagger:model KeyRequest
type KeyRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Key      string `json:"key"`
	Password string `json:"password"`
}
