package car

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyMake        = errors.New("car make is required")
	ErrEmptyModel       = errors.New("car model is required")
	ErrInvalidYear      = errors.New("invalid car year")
	ErrEmptyPlateNumber = errors.New("plate number is required")
)

const (
	minYear = 1950
	maxYear = 2100
)

// Car is immutable reference data for the family fleet.
type Car struct {
	id          uuid.UUID
	make        string
	model       string
	year        int
	plateNumber string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCar(make, model string, year int, plateNumber string) (*Car, error) {
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)
	plateNumber = strings.TrimSpace(plateNumber)

	if make == "" {
		return nil, ErrEmptyMake
	}
	if model == "" {
		return nil, ErrEmptyModel
	}
	if year < minYear || year > maxYear {
		return nil, ErrInvalidYear
	}
	if plateNumber == "" {
		return nil, ErrEmptyPlateNumber
	}

	return &Car{
		id:          uuid.New(),
		make:        make,
		model:       model,
		year:        year,
		plateNumber: plateNumber,
	}, nil
}

func ReconstructCar(
	id uuid.UUID,
	make, model string,
	year int,
	plateNumber string,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:          id,
		make:        make,
		model:       model,
		year:        year,
		plateNumber: plateNumber,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Car) ID() uuid.UUID        { return c.id }
func (c *Car) Make() string         { return c.make }
func (c *Car) Model() string        { return c.model }
func (c *Car) Year() int            { return c.year }
func (c *Car) PlateNumber() string  { return c.plateNumber }
func (c *Car) CreatedAt() time.Time { return c.createdAt }
func (c *Car) UpdatedAt() time.Time { return c.updatedAt }

// DisplayName is the label used in lists and timeline bars.
func (c *Car) DisplayName() string {
	return c.make + " " + c.model
}
