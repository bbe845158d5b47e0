package dto

import "time"

type CreateApplicationRequest struct {
	VisaTypeID     int64      `json:"visa_type_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PassportNumber string     `json:"passport_number"`
	Nationality    string     `json:"nationality"`
	TravelDate     *time.Time `json:"travel_date,omitempty"`
	Documents      []string   `json:"documents,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type ApplicationResponse struct {
	ID             int64      `json:"id"`
	VisaTypeID     int64      `json:"visa_type_id"`
	Status         string     `json:"status"`
	StatusLabelAr  string     `json:"status_label_ar"`
	StatusLabelEn  string     `json:"status_label_en"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PassportNumber string     `json:"passport_number"`
	Nationality    string     `json:"nationality"`
	TravelDate     *time.Time `json:"travel_date,omitempty"`
	Documents      []string   `json:"documents,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DashboardStats are simple filters over the caller's applications, not
// a separate aggregation query.
type DashboardStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Completed int `json:"completed"`
}

type DashboardResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Stats        DashboardStats        `json:"stats"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}
