package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/alexanderramin/herdsync/internal/domain"
)

// SQLReminderRepo implements ReminderRepo. Due dates are stored as
// YYYY-MM-DD text so range queries compare lexically in both dialects.
type SQLReminderRepo struct {
	db db.DBTX
}

func NewSQLReminderRepo(conn db.DBTX) *SQLReminderRepo {
	return &SQLReminderRepo{db: conn}
}

const reminderColumns = `id, cow_id, sync_method_id, sync_step_id, title, description, due_date,
	completed, completed_at, priority, type, estimated_cow_count,
	workforce_workers, workforce_technicians, workforce_doctors, created_at, updated_at`

func (r *SQLReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (` + reminderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	workers, technicians, doctors := snapshotValues(rem.WorkforceSnapshot)
	_, err := r.db.ExecContext(ctx, query,
		rem.ID,
		rem.CowID,
		textOrNull(rem.ProtocolID),
		textOrNull(rem.StepID),
		rem.Title,
		rem.Description,
		domain.CivilDay(rem.DueDate).Format(domain.DateLayout),
		flag(rem.Completed),
		formatOptional(rem.CompletedAt, time.RFC3339),
		string(rem.Priority),
		string(rem.Type),
		orNull(rem.EstimatedCowCount),
		workers,
		technicians,
		doctors,
		stamp(rem.CreatedAt),
		stamp(rem.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	return nil
}

// CreateBatch inserts reminders in order and stops at the first failure.
// Callers wrap it in a unit of work for all-or-nothing semantics.
func (r *SQLReminderRepo) CreateBatch(ctx context.Context, rs []domain.Reminder) error {
	for i := range rs {
		if err := r.Create(ctx, &rs[i]); err != nil {
			return fmt.Errorf("reminder %d of %d: %w", i+1, len(rs), err)
		}
	}
	return nil
}

func (r *SQLReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id)
	rem, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Kind: "reminder", ID: id}
		}
		return nil, err
	}
	return rem, nil
}

func (r *SQLReminderRepo) List(ctx context.Context) ([]domain.Reminder, error) {
	return r.query(ctx, `SELECT `+reminderColumns+` FROM reminders ORDER BY due_date, created_at, id`)
}

func (r *SQLReminderRepo) ListByCow(ctx context.Context, cowID string) ([]domain.Reminder, error) {
	return r.query(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE cow_id = ? ORDER BY due_date, created_at, id`, cowID)
}

func (r *SQLReminderRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]domain.Reminder, error) {
	return r.query(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE due_date >= ? AND due_date <= ? ORDER BY due_date, created_at, id`,
		domain.CivilDay(from).Format(domain.DateLayout),
		domain.CivilDay(to).Format(domain.DateLayout),
	)
}

func (r *SQLReminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	query := `UPDATE reminders SET title = ?, description = ?, due_date = ?, completed = ?, completed_at = ?,
		priority = ?, type = ?, estimated_cow_count = ?,
		workforce_workers = ?, workforce_technicians = ?, workforce_doctors = ?, updated_at = ?
		WHERE id = ?`
	workers, technicians, doctors := snapshotValues(rem.WorkforceSnapshot)
	res, err := r.db.ExecContext(ctx, query,
		rem.Title,
		rem.Description,
		domain.CivilDay(rem.DueDate).Format(domain.DateLayout),
		flag(rem.Completed),
		formatOptional(rem.CompletedAt, time.RFC3339),
		string(rem.Priority),
		string(rem.Type),
		orNull(rem.EstimatedCowCount),
		workers,
		technicians,
		doctors,
		stamp(rem.UpdatedAt),
		rem.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}
	return expectOneRow(res, "reminder", rem.ID)
}

func (r *SQLReminderRepo) query(ctx context.Context, query string, args ...any) ([]domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var out []domain.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return out, nil
}

func scanReminder(s scanner) (*domain.Reminder, error) {
	var rem domain.Reminder
	var methodID, stepID, completedAt sql.NullString
	var dueDate, priority, typ, createdAt, updatedAt string
	var completed int
	var estimated, workers, technicians, doctors sql.Null[int]

	err := s.Scan(
		&rem.ID, &rem.CowID, &methodID, &stepID, &rem.Title, &rem.Description, &dueDate,
		&completed, &completedAt, &priority, &typ, &estimated,
		&workers, &technicians, &doctors, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}

	due, err := domain.ParseDate(dueDate)
	if err != nil {
		return nil, fmt.Errorf("parsing due_date: %w", err)
	}
	rem.DueDate = due
	rem.ProtocolID = methodID.String
	rem.StepID = stepID.String
	rem.Completed = completed != 0
	rem.CompletedAt = parseOptional(completedAt, time.RFC3339)
	rem.Priority = domain.Priority(priority)
	rem.Type = domain.TaskType(typ)
	rem.EstimatedCowCount = ptrOf(estimated)
	if workers.Valid || technicians.Valid || doctors.Valid {
		rem.WorkforceSnapshot = &domain.WorkforceSnapshot{
			Workers:     workers.V,
			Technicians: technicians.V,
			Doctors:     doctors.V,
		}
	}
	rem.CreatedAt = parseStamp(createdAt)
	rem.UpdatedAt = parseStamp(updatedAt)
	return &rem, nil
}

func snapshotValues(w *domain.WorkforceSnapshot) (any, any, any) {
	if w == nil {
		return nil, nil, nil
	}
	return w.Workers, w.Technicians, w.Doctors
}
