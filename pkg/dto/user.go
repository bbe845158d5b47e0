package dto

import "time"

type UserResponse struct {
	ID           int64     `json:"id"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"login_method"`
	Role         string    `json:"role"`
	LastSignedIn time.Time `json:"last_signed_in"`
}
