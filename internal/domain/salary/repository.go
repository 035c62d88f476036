package salary

import "context"

type SalaryRepository interface {
	// Upsert writes the computed fields of the record keyed by
	// (user, month, year). On conflict the workflow status is preserved;
	// a new record starts as DRAFT.
	Upsert(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Record, error)
	GetYearStats(ctx context.Context, userID string, year int) (YearStats, error)
}

type SalaryService interface {
	// Calculate computes and persists the salary record for the user and
	// period. Recomputation with unchanged inputs yields identical
	// computed fields and does not reset the workflow status.
	Calculate(ctx context.Context, userID string, month, year int) (RecordResponse, error)
	MySalaries(ctx context.Context, userID string, month, year *int) ([]RecordResponse, error)
	ListAll(ctx context.Context, filter ListFilter) ([]RecordResponse, error)
	UpdateStatus(ctx context.Context, id string, status string) (RecordResponse, error)
	Stats(ctx context.Context, userID string, year int) (YearStats, error)
}
