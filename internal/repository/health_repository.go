package repository

import (
	"context"

	"github.com/CodeZF375/crimsonbot/internal/database"
)

type HealthRepository interface {
	Ping(ctx context.Context) error
}

type healthRepository struct {
	db *database.DB
}

func NewHealthRepository(db *database.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
