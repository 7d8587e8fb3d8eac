package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/alexanderramin/herdsync/internal/domain"
)

// SQLCowRepo implements CowRepo over any DBTX (sqlite or postgres).
type SQLCowRepo struct {
	db db.DBTX
}

func NewSQLCowRepo(conn db.DBTX) *SQLCowRepo {
	return &SQLCowRepo{db: conn}
}

const cowColumns = `id, name, breed, age, status, health_notes, last_sync_date, created_at, updated_at`

func (r *SQLCowRepo) Create(ctx context.Context, c *domain.Cow) error {
	query := `INSERT INTO cows (` + cowColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Breed,
		c.Age,
		string(c.Status),
		c.HealthNotes,
		formatOptional(c.LastSyncDate, domain.DateLayout),
		stamp(c.CreatedAt),
		stamp(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting cow: %w", err)
	}
	return nil
}

func (r *SQLCowRepo) GetByID(ctx context.Context, id string) (*domain.Cow, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cowColumns+` FROM cows WHERE id = ?`, id)
	c, err := scanCow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Kind: "cow", ID: id}
	}
	return c, err
}

func (r *SQLCowRepo) List(ctx context.Context) ([]*domain.Cow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cowColumns+` FROM cows ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing cows: %w", err)
	}
	defer rows.Close()

	var cows []*domain.Cow
	for rows.Next() {
		c, err := scanCow(rows)
		if err != nil {
			return nil, err
		}
		cows = append(cows, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cows: %w", err)
	}
	return cows, nil
}

func (r *SQLCowRepo) Update(ctx context.Context, c *domain.Cow) error {
	query := `UPDATE cows SET name = ?, breed = ?, age = ?, status = ?, health_notes = ?, last_sync_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Breed,
		c.Age,
		string(c.Status),
		c.HealthNotes,
		formatOptional(c.LastSyncDate, domain.DateLayout),
		stamp(c.UpdatedAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating cow: %w", err)
	}
	return expectOneRow(res, "cow", c.ID)
}

func (r *SQLCowRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cows WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting cow: %w", err)
	}
	return expectOneRow(res, "cow", id)
}

func (r *SQLCowRepo) CountByStatus(ctx context.Context) (map[domain.CowStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM cows GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting cows: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CowStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning cow count: %w", err)
		}
		counts[domain.CowStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cow counts: %w", err)
	}
	return counts, nil
}

func scanCow(s scanner) (*domain.Cow, error) {
	var c domain.Cow
	var status, createdAt, updatedAt string
	var lastSync sql.NullString

	err := s.Scan(&c.ID, &c.Name, &c.Breed, &c.Age, &status, &c.HealthNotes, &lastSync, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning cow: %w", err)
	}
	c.Status = domain.CowStatus(status)
	c.LastSyncDate = parseOptional(lastSync, domain.DateLayout)
	c.CreatedAt = parseStamp(createdAt)
	c.UpdatedAt = parseStamp(updatedAt)
	return &c, nil
}

// expectOneRow turns an update or delete that matched nothing into a NotFoundError.
func expectOneRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}
