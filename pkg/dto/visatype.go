package dto

type VisaTypeResponse struct {
	ID             int64    `json:"id"`
	NameAr         string   `json:"name_ar"`
	NameEn         string   `json:"name_en"`
	DescriptionAr  *string  `json:"description_ar,omitempty"`
	DescriptionEn  *string  `json:"description_en,omitempty"`
	Price          int      `json:"price"`
	ProcessingDays int      `json:"processing_days"`
	Requirements   []string `json:"requirements"`
}
