package repository

import (
	"context"
	"time"

	"carreserve/internal/domain/reservation"
	"carreserve/internal/infra"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationViewColumns = `
	r.id, r.car_id, c.make, c.model, c.plate_number,
	r.user_id, u.email, r.start_time, r.end_time,
	r.purpose, r.status, r.created_at, r.updated_at`

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation and returns the joined view. A lost booking
// race trips the exclusion constraint and comes back as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error) {
	const insert = `
		INSERT INTO reservations (id, car_id, user_id, start_time, end_time, purpose, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, insert,
		res.ID(),
		res.CarID(),
		res.UserID(),
		res.Slot().Start(),
		res.Slot().End(),
		res.Purpose().String(),
		res.Status().String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return r.FindByID(ctx, res.ID())
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM reservations r
		JOIN cars c ON c.id = r.car_id
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanReservationView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM reservations r
		JOIN cars c ON c.id = r.car_id
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.start_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user ID", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

// FindSlotsByCar returns the slot projections the availability check runs
// against: every reservation on the car intersecting [from, until).
func (r *ReservationRepository) FindSlotsByCar(ctx context.Context, carID uuid.UUID, from, until time.Time) ([]*queries.ReservationSlotRow, error) {
	const query = `
		SELECT id, car_id, start_time, end_time, status
		FROM reservations
		WHERE car_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, carID, from, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation slots by car", err)
	}
	defer rows.Close()

	var result []*queries.ReservationSlotRow
	for rows.Next() {
		var row queries.ReservationSlotRow
		if err := rows.Scan(&row.ID, &row.CarID, &row.StartTime, &row.EndTime, &row.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation slot row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation slot rows", err)
	}

	return result, nil
}

// FindTimelineRows returns every reservation starting inside [from, until)
// joined with car and owner, ordered by start time for the timeline view.
func (r *ReservationRepository) FindTimelineRows(ctx context.Context, from, until time.Time) ([]*queries.TimelineRow, error) {
	const query = `
		SELECT r.id, r.start_time, r.end_time, c.make, c.model, r.user_id, u.email
		FROM reservations r
		JOIN cars c ON c.id = r.car_id
		JOIN users u ON u.id = r.user_id
		WHERE r.start_time >= $1 AND r.start_time < $2 AND r.status <> 'cancelled'
		ORDER BY r.start_time`

	rows, err := r.db.Query(ctx, query, from, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find timeline rows", err)
	}
	defer rows.Close()

	var result []*queries.TimelineRow
	for rows.Next() {
		var row queries.TimelineRow
		if err := rows.Scan(
			&row.ID,
			&row.StartTime,
			&row.EndTime,
			&row.CarMake,
			&row.CarModel,
			&row.UserID,
			&row.UserEmail,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeline row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timeline rows", err)
	}

	return result, nil
}

// UpdateStatus persists a status transition. Reservations are never deleted;
// cancellation is just another transition.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	const query = `SELECT count(*) FROM reservations WHERE status = ANY($1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, statuses).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := row.Scan(
		&view.ID,
		&view.CarID,
		&view.CarMake,
		&view.CarModel,
		&view.CarPlate,
		&view.UserID,
		&view.UserEmail,
		&view.StartTime,
		&view.EndTime,
		&view.Purpose,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
