package rawdata

import "context"

type Repository interface {
	InsertMany(ctx context.Context, items []Capture) error
}
