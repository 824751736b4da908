package response

import (
	"time"

	"carreserve/internal/pkg/errs"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"carId"`
	CarMake   string    `json:"carMake"`
	CarModel  string    `json:"carModel"`
	CarPlate  string    `json:"carPlate"`
	UserID    uuid.UUID `json:"userId"`
	UserEmail string    `json:"userEmail"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Purpose   string    `json:"purpose"`
	Status    string    `json:"status"`
	CanCancel bool      `json:"canCancel"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReservationView(view *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation view")
	}
	return &resp, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	result := make([]*ReservationResponse, len(views))
	for i, view := range views {
		resp, err := FromReservationView(view)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
