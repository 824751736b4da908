package repository

import (
	"context"

	"carreserve/internal/domain/car"
	"carreserve/internal/infra"
	"carreserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	db *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) List(ctx context.Context) ([]*queries.CarView, error) {
	const query = `
		SELECT id, make, model, year, plate_number, created_at
		FROM cars
		ORDER BY make, model`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	var result []*queries.CarView
	for rows.Next() {
		var view queries.CarView
		if err := rows.Scan(
			&view.ID,
			&view.Make,
			&view.Model,
			&view.Year,
			&view.PlateNumber,
			&view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate car rows", err)
	}

	return result, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarView, error) {
	const query = `
		SELECT id, make, model, year, plate_number, created_at
		FROM cars
		WHERE id = $1`

	var view queries.CarView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Make,
		&view.Model,
		&view.Year,
		&view.PlateNumber,
		&view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return &view, nil
}

// Create inserts a fleet car. A duplicate plate number surfaces as
// KindDuplicateKey via the unique constraint.
func (r *CarRepository) Create(ctx context.Context, c *car.Car) (*queries.CarView, error) {
	const insert = `
		INSERT INTO cars (id, make, model, year, plate_number)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, insert,
		c.ID(),
		c.Make(),
		c.Model(),
		c.Year(),
		c.PlateNumber(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create car", err)
	}

	return r.FindByID(ctx, c.ID())
}

func (r *CarRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM cars`).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count cars", err)
	}
	return count, nil
}
