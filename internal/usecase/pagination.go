package usecase

import "fmt"

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// PageRequest carries normalized pagination for the read services.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalize() (limit, offset int, err error) {
	page := p.Page
	if page == 0 {
		page = 1
	}
	limit = p.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}

	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if limit < 1 || limit > MaxPageLimit {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPageLimit)
	}

	return limit, (page - 1) * limit, nil
}
