package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	// ListByDateRange returns holidays with from <= date <= to, soonest first.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	ListAll(ctx context.Context) ([]Holiday, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (Holiday, error)
	Delete(ctx context.Context, id string) error
}

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	List(ctx context.Context, year *int) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
