package request

import (
	"strings"

	"carreserve/internal/usecase"
)

// CreateCarRequest is the admin fleet-registration form.
type CreateCarRequest struct {
	Make        string `json:"make" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Year        int    `json:"year" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
}

func (r CreateCarRequest) ToInput() usecase.CreateCarInput {
	return usecase.CreateCarInput{
		Make:        strings.TrimSpace(r.Make),
		Model:       strings.TrimSpace(r.Model),
		Year:        r.Year,
		PlateNumber: strings.TrimSpace(r.PlateNumber),
	}
}
