package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for the read side). Rows coming back from Postgres are
// parsed into these at the repository boundary; nothing downstream touches
// raw column values.

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type CarView struct {
	ID          uuid.UUID `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int32     `json:"year"`
	PlateNumber string    `json:"plate_number"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	CarID       uuid.UUID `json:"car_id"`
	CarMake     string    `json:"car_make"`
	CarModel    string    `json:"car_model"`
	CarPlate    string    `json:"car_plate"`
	UserID      uuid.UUID `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Purpose     string    `json:"purpose"`
	Status      string    `json:"status"`
	CanCancel   bool      `json:"can_cancel"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReservationSlotRow is the minimal projection the availability check needs.
type ReservationSlotRow struct {
	ID        uuid.UUID `json:"id"`
	CarID     uuid.UUID `json:"car_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// TimelineRow feeds the timeline layout: reservation joined with car and owner.
type TimelineRow struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CarMake   string    `json:"car_make"`
	CarModel  string    `json:"car_model"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
}

type DashboardStats struct {
	CarCount           int64 `json:"car_count"`
	ActiveReservations int64 `json:"active_reservations"`
}
