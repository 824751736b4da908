package response

import (
	"time"

	"carreserve/internal/pkg/errs"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID          uuid.UUID `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int32     `json:"year"`
	PlateNumber string    `json:"plateNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromCarView(view *queries.CarView) (*CarResponse, error) {
	var resp CarResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map car view")
	}
	return &resp, nil
}

func FromCarViews(views []*queries.CarView) ([]*CarResponse, error) {
	result := make([]*CarResponse, len(views))
	for i, view := range views {
		resp, err := FromCarView(view)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
