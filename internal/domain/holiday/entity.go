package holiday

import "time"

type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        Type
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Type distinguishes national from optional holidays. The working-day
// counter excludes both identically; the field is informational only.
type Type string

const (
	TypeNational Type = "NATIONAL"
	TypeOptional Type = "OPTIONAL"
)

func (t Type) Valid() bool {
	return t == TypeNational || t == TypeOptional
}
