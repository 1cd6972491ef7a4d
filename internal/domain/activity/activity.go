package activity

import (
	"database/sql"
	"time"
)

// Activity represents one pending task read from the host system.
// The pipeline never mutates activities; it only reads and relays them.
type Activity struct {
	ID             int64
	ResName        string        // Subject / resource name shown in messages
	ResModel       string        // Model of the originating record (e.g. "crm.lead")
	ResID          int64         // ID of the originating record
	TypeName       string        // Category name (e.g. "Follow-up")
	NotifyExternal bool          // The category's "send to Discord" flag
	DateDeadline   time.Time     // Date precision; time component is ignored
	UserID         sql.NullInt64 // Optional assignee reference
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assigned reports whether the activity has an assignee.
func (a *Activity) Assigned() bool {
	return a.UserID.Valid
}
