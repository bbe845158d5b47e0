package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/msalem/visahub-api/internal/models"
	"github.com/msalem/visahub-api/pkg/dto"
)

type VisaTypeHandler struct {
	visaTypeService VisaTypeServiceInterface
}

func NewVisaTypeHandler(visaTypeService VisaTypeServiceInterface) *VisaTypeHandler {
	return &VisaTypeHandler{visaTypeService: visaTypeService}
}

// List serves the public catalog. A store failure is a 500, never an
// empty list: callers must be able to tell "nothing offered" from
// "catalog unavailable".
func (h *VisaTypeHandler) List(c *drift.Context) {
	types, err := h.visaTypeService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to load visa types")
		return
	}

	responses := make([]dto.VisaTypeResponse, 0, len(types))
	for _, vt := range types {
		responses = append(responses, visaTypeResponse(vt))
	}

	_ = c.JSON(200, responses)
}

func visaTypeResponse(vt models.VisaType) dto.VisaTypeResponse {
	return dto.VisaTypeResponse{
		ID:             vt.ID,
		NameAr:         vt.NameAr,
		NameEn:         vt.NameEn,
		DescriptionAr:  vt.DescriptionAr,
		DescriptionEn:  vt.DescriptionEn,
		Price:          vt.Price,
		ProcessingDays: vt.ProcessingDays,
		Requirements:   vt.Requirements,
	}
}
