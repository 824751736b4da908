//go:build unit || e2e

package builder

import (
	"time"

	"carreserve/internal/domain/car"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID          uuid.UUID
	Make        string
	Model       string
	Year        int
	PlateNumber string
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:          uuid.New(),
		Make:        "Toyota",
		Model:       "Sienna",
		Year:        2021,
		PlateNumber: "FAM-0001",
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) BuildDomain() (*car.Car, error) {
	return car.NewCar(b.Make, b.Model, b.Year, b.PlateNumber)
}

func (b *CarBuilder) BuildView() *queries.CarView {
	return &queries.CarView{
		ID:          b.ID,
		Make:        b.Make,
		Model:       b.Model,
		Year:        int32(b.Year),
		PlateNumber: b.PlateNumber,
		CreatedAt:   time.Now(),
	}
}
