package jobs

import (
	"context"
	"database/sql"
	"time"

	"libtrack-backend/internal/logger"
)

// ReportOverdueCheckouts logs every open checkout whose due date has passed.
// Read-only: overdue books stay CHECKED_OUT until they are actually returned.
func (jr *JobRunner) ReportOverdueCheckouts() {
	jr.runWithRecovery("ReportOverdueCheckouts", func() {
		ctx := context.Background()

		query := `
			SELECT c.id, c.due_date, b.id, b.title, u.id, u.name, u.email
			FROM checkouts c
			JOIN books b ON c.book_id = b.id
			JOIN users u ON c.user_id = u.id
			WHERE c.return_date IS NULL
			  AND c.due_date < CURRENT_TIMESTAMP
			ORDER BY c.due_date ASC
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to query overdue checkouts", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var checkoutID, bookID, userID int32
			var dueDate time.Time
			var title, name string
			var email sql.NullString
			if err := rows.Scan(&checkoutID, &dueDate, &bookID, &title, &userID, &name, &email); err != nil {
				logger.Error("Failed to scan overdue checkout", "error", err)
				continue
			}
			count++
			logger.Warn("Overdue checkout",
				"checkout_id", checkoutID,
				"book_id", bookID,
				"book_title", title,
				"user_id", userID,
				"user_name", name,
				"due_date", dueDate.Format("2006-01-02"),
				"days_overdue", int(time.Since(dueDate).Hours()/24))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue checkouts", "error", err)
			return
		}

		logger.Info("Overdue report complete", "overdue_count", count)
	})
}
