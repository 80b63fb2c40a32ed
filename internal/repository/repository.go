package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db        *sqlx.DB
	broadcast BroadcastRepository
	provider  ProviderRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:        db,
		broadcast: NewBroadcastRepository(db),
		provider:  NewProviderRepository(db),
	}
}

// Broadcast returns the broadcast message repository.
func (r *repositoryImpl) Broadcast() BroadcastRepository {
	return r.broadcast
}

// Provider returns the provider details repository.
func (r *repositoryImpl) Provider() ProviderRepository {
	return r.provider
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
