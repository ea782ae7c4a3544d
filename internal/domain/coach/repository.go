package coach

import "context"

// Repository describes the local coach dataset.
type Repository interface {
	List(ctx context.Context) ([]Coach, error)
}
