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

// SQLProtocolRepo implements ProtocolRepo over the sync_methods and
// sync_steps tables.
type SQLProtocolRepo struct {
	db db.DBTX
}

func NewSQLProtocolRepo(conn db.DBTX) *SQLProtocolRepo {
	return &SQLProtocolRepo{db: conn}
}

const protocolColumns = `id, name, description, duration, is_custom, has_workforce_settings`

const stepColumns = `id, day, title, description, hormone_type, notes, worker_per_cows, technician_per_cows, doctor_per_cows`

// Save inserts or replaces a protocol and all of its steps. Run it inside a
// unit of work so the steps are swapped atomically.
func (r *SQLProtocolRepo) Save(ctx context.Context, p *domain.Protocol) error {
	now := stamp(time.Now())
	query := `INSERT INTO sync_methods (` + protocolColumns + `, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			duration = excluded.duration,
			is_custom = excluded.is_custom,
			has_workforce_settings = excluded.has_workforce_settings,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		p.DurationDays,
		flag(p.IsCustom),
		flag(p.HasWorkforceSettings),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("saving sync method: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM sync_steps WHERE sync_method_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing sync steps: %w", err)
	}
	for i, s := range p.Steps {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO sync_steps (sync_method_id, position, `+stepColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID,
			i,
			s.ID,
			s.Day,
			s.Title,
			s.Description,
			s.HormoneType,
			s.Notes,
			positiveOrNull(s.Ratios.WorkerPerSubjects),
			positiveOrNull(s.Ratios.TechnicianPerSubjects),
			positiveOrNull(s.Ratios.DoctorPerSubjects),
		)
		if err != nil {
			return fmt.Errorf("inserting sync step %s: %w", s.ID, err)
		}
	}
	return nil
}

func (r *SQLProtocolRepo) GetByID(ctx context.Context, id string) (*domain.Protocol, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+protocolColumns+` FROM sync_methods WHERE id = ?`, id)
	p, err := scanProtocol(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Kind: "protocol", ID: id}
		}
		return nil, err
	}
	if p.Steps, err = r.listSteps(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLProtocolRepo) List(ctx context.Context) ([]*domain.Protocol, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+protocolColumns+` FROM sync_methods ORDER BY is_custom, name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing sync methods: %w", err)
	}
	var protocols []*domain.Protocol
	for rows.Next() {
		p, err := scanProtocol(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		protocols = append(protocols, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating sync methods: %w", err)
	}
	rows.Close()

	// steps are loaded after the cursor closes; sqlite runs on one connection
	for _, p := range protocols {
		if p.Steps, err = r.listSteps(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return protocols, nil
}

func (r *SQLProtocolRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sync_methods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting sync method: %w", err)
	}
	return expectOneRow(res, "protocol", id)
}

func (r *SQLProtocolRepo) listSteps(ctx context.Context, methodID string) ([]domain.ProtocolStep, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stepColumns+` FROM sync_steps WHERE sync_method_id = ? ORDER BY position`, methodID)
	if err != nil {
		return nil, fmt.Errorf("listing sync steps: %w", err)
	}
	defer rows.Close()

	var steps []domain.ProtocolStep
	for rows.Next() {
		var s domain.ProtocolStep
		var worker, technician, doctor sql.Null[float64]
		if err := rows.Scan(&s.ID, &s.Day, &s.Title, &s.Description, &s.HormoneType, &s.Notes,
			&worker, &technician, &doctor); err != nil {
			return nil, fmt.Errorf("scanning sync step: %w", err)
		}
		s.Ratios = domain.CapacityRatio{
			WorkerPerSubjects:     worker.V,
			TechnicianPerSubjects: technician.V,
			DoctorPerSubjects:     doctor.V,
		}
		steps = append(steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync steps: %w", err)
	}
	return steps, nil
}

func scanProtocol(s scanner) (*domain.Protocol, error) {
	var p domain.Protocol
	var isCustom, hasWorkforce int
	err := s.Scan(&p.ID, &p.Name, &p.Description, &p.DurationDays, &isCustom, &hasWorkforce)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning sync method: %w", err)
	}
	p.IsCustom = isCustom != 0
	p.HasWorkforceSettings = hasWorkforce != 0
	return &p, nil
}
