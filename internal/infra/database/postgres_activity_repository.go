package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"activity_notification_bot/internal/domain/activity"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type PostgresActivityRepository struct {
	db *sql.DB
}

func NewPostgresActivityRepository(db *sql.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

// ListNotifiable returns activities flagged for Discord whose deadline is on or
// before ref. The record_active column is maintained by the host for records
// that carry an archive flag; NULL means the record has no such lifecycle and
// always counts as active.
func (r *PostgresActivityRepository) ListNotifiable(ctx context.Context, ref time.Time, onlyActiveRecords bool) ([]*activity.Activity, error) {
	query := `SELECT a.id, a.res_name, a.res_model, a.res_id, t.name, t.discord_connector,
                      a.date_deadline, a.user_id, a.created_at, a.updated_at
               FROM mail_activities a
               JOIN activity_types t ON t.id = a.activity_type_id
               WHERE t.discord_connector = TRUE AND a.date_deadline <= $1::date`
	if onlyActiveRecords {
		query += ` AND COALESCE(a.record_active, TRUE)`
	}
	query += ` ORDER BY a.date_deadline, a.id`

	rows, err := r.db.QueryContext(ctx, query, ref)
	if err != nil {
		return nil, fmt.Errorf("error listing notifiable activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*activity.Activity, 0)
	for rows.Next() {
		a := &activity.Activity{}
		if err := rows.Scan(&a.ID, &a.ResName, &a.ResModel, &a.ResID, &a.TypeName, &a.NotifyExternal,
			&a.DateDeadline, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning notifiable activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifiable activities: %w", err)
	}
	return activities, nil
}
