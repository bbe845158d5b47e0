package models

import "time"

// VisaType is a catalog entry for an offered visa product. Names and
// descriptions carry both locales; prices are whole SAR amounts.
type VisaType struct {
	ID             int64     `json:"id"`
	NameAr         string    `json:"name_ar"`
	NameEn         string    `json:"name_en"`
	DescriptionAr  *string   `json:"description_ar,omitempty"`
	DescriptionEn  *string   `json:"description_en,omitempty"`
	Price          int       `json:"price"`
	ProcessingDays int       `json:"processing_days"`
	Requirements   []string  `json:"requirements"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
