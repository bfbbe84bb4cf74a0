package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	InsertMany(ctx context.Context, items []Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
	ListByCountry(ctx context.Context, country string, limit, offset int) ([]Record, error)
	ListBySeason(ctx context.Context, season int, limit, offset int) ([]Record, error)
	Count(ctx context.Context) (int64, error)
	CountByCountry(ctx context.Context, country string) (int64, error)
	CountBySeason(ctx context.Context, season int) (int64, error)
	Stats(ctx context.Context) (Stats, error)
}
