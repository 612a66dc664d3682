package models

import "time"

// Submission represents one gift card balance check: the submitted card number
// paired with the balance reported to the caller.
type Submission struct {
	ID          int64     `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	OID         string    `json:"_id,omitempty" gorm:"-"`
	InputData   string    `json:"input_data" gorm:"type:varchar(255);not null"`
	Balance     float64   `json:"balance" gorm:"type:decimal(10,2);not null"`
	DateChecked time.Time `json:"date_checked" gorm:"not null;default:CURRENT_TIMESTAMP;autoCreateTime;index"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "data_entries"
}

// Request/Response models

// CreateSubmissionRequest represents a request to record a gift card check.
// Both card_number and cardNumber are accepted for the card field.
type CreateSubmissionRequest struct {
	CardNumber    string   `json:"card_number"`
	CardNumberAlt string   `json:"cardNumber"`
	Balance       *float64 `json:"balance"`
}

// Card returns whichever card number field the caller populated.
func (r CreateSubmissionRequest) Card() string {
	if r.CardNumber != "" {
		return r.CardNumber
	}
	return r.CardNumberAlt
}

// CheckCardRequest represents a request to test whether a card number was
// already submitted.
type CheckCardRequest struct {
	CardNumber    string `json:"card_number"`
	CardNumberAlt string `json:"cardNumber"`
}

// Card returns whichever card number field the caller populated.
func (r CheckCardRequest) Card() string {
	if r.CardNumber != "" {
		return r.CardNumber
	}
	return r.CardNumberAlt
}

type MessageResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}
