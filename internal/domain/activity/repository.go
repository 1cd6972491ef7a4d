package activity

import (
	"context"
	"time"
)

// Repository defines the read operations the sweep needs from the host system's
// activity storage.
type Repository interface {
	// ListNotifiable returns activities whose category is flagged for external
	// notification and whose deadline is on or before ref (due or overdue).
	// With onlyActiveRecords, activities whose originating record is archived
	// are excluded; records without a lifecycle flag count as active.
	ListNotifiable(ctx context.Context, ref time.Time, onlyActiveRecords bool) ([]*Activity, error)
}
