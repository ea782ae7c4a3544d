package player

import "context"

// Repository describes the local player dataset.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
}
