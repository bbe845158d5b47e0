package models

import (
	"fmt"
	"time"
)

// Status is the closed set of application states. Applications are
// created as StatusPending; transitions happen through an external
// reviewing process, not through this API.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("invalid status: %q", s)
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// LabelAr returns the Arabic display text shown on the dashboard.
func (s Status) LabelAr() string {
	switch s {
	case StatusPending:
		return "قيد الانتظار"
	case StatusApproved:
		return "موافق عليه"
	case StatusRejected:
		return "مرفوض"
	case StatusCompleted:
		return "مكتمل"
	}
	return string(s)
}

// LabelEn returns the English display text.
func (s Status) LabelEn() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// VisaApplication is one applicant's request against one visa type.
// The applicant fields are a snapshot captured at submission time and
// are stored independently of the live user record.
type VisaApplication struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	VisaTypeID     int64      `json:"visa_type_id"`
	Status         Status     `json:"status"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PassportNumber string     `json:"passport_number"`
	Nationality    string     `json:"nationality"`
	TravelDate     *time.Time `json:"travel_date,omitempty"`
	Documents      []string   `json:"documents,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
