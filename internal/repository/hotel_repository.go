package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hotel-booking/internal/domain"
)

// HotelRepository defines persistence access for hotels.
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
}

type hotelRepository struct {
	pool *pgxpool.Pool
}

// NewHotelRepository returns a Postgres-backed implementation.
func NewHotelRepository(pool *pgxpool.Pool) HotelRepository {
	return &hotelRepository{pool: pool}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	const query = `
        INSERT INTO hotels (name, location, price_per_night)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		hotel.Name,
		hotel.Location,
		hotel.PricePerNight,
	).Scan(&hotel.ID, &hotel.CreatedAt, &hotel.UpdatedAt)
}

func (r *hotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	const query = `
        UPDATE hotels SET name=$1, location=$2, price_per_night=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		hotel.Name,
		hotel.Location,
		hotel.PricePerNight,
		hotel.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM hotels WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id string) (*domain.Hotel, error) {
	const query = `
        SELECT id, name, location, price_per_night, created_at, updated_at
        FROM hotels WHERE id=$1`

	var hotel domain.Hotel
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.PricePerNight,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	const query = `
        SELECT id, name, location, price_per_night, created_at, updated_at
        FROM hotels ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var hotel domain.Hotel
		if err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Location,
			&hotel.PricePerNight,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		); err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}
	return hotels, rows.Err()
}
