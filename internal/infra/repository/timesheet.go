package repository

import (
	"context"
	"errors"
	"time"

	"shiftboard/internal/domain/timesheet"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TimesheetRepository struct {
	db db.DBTX
}

func NewTimesheetRepository(dbtx db.DBTX) *TimesheetRepository {
	return &TimesheetRepository{db: dbtx}
}

const entrySelect = `
	SELECT e.id, e.company_id, e.user_id, u.name, e.shift_id, e.clock_in, e.clock_out
	FROM time_entries e
	JOIN users u ON u.id = e.user_id`

func scanEntry(row pgx.Row) (*readmodel.TimeEntryRM, error) {
	var rm readmodel.TimeEntryRM
	err := row.Scan(&rm.ID, &rm.CompanyID, &rm.UserID, &rm.UserName, &rm.ShiftID, &rm.ClockIn, &rm.ClockOut)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *TimesheetRepository) FindOpenByUser(ctx context.Context, userID uuid.UUID) (*readmodel.TimeEntryRM, error) {
	rm, err := scanEntry(r.db.QueryRow(ctx,
		entrySelect+` WHERE e.user_id = $1 AND e.clock_out IS NULL`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("open time entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open time entry", err)
	}
	return rm, nil
}

func (r *TimesheetRepository) Create(ctx context.Context, e *timesheet.Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO time_entries (id, company_id, user_id, shift_id, clock_in)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID(), e.CompanyID(), e.UserID(), e.ShiftID(), e.ClockIn())
	if err != nil {
		return infra.WrapRepoErr("failed to create time entry", err)
	}
	return nil
}

func (r *TimesheetRepository) Close(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE time_entries SET clock_out = $2 WHERE id = $1 AND clock_out IS NULL`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to close time entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("open time entry not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *TimesheetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]readmodel.TimeEntryRM, error) {
	rows, err := r.db.Query(ctx, entrySelect+` WHERE e.user_id = $1 ORDER BY e.clock_in DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time entries by user", err)
	}
	return collectEntries(rows)
}

func (r *TimesheetRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.TimeEntryRM, error) {
	rows, err := r.db.Query(ctx, entrySelect+` WHERE e.company_id = $1 ORDER BY e.clock_in DESC`, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time entries by company", err)
	}
	return collectEntries(rows)
}

func collectEntries(rows pgx.Rows) ([]readmodel.TimeEntryRM, error) {
	defer rows.Close()

	var entries []readmodel.TimeEntryRM
	for rows.Next() {
		rm, err := scanEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time entry row", err)
		}
		entries = append(entries, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time entry rows", err)
	}
	return entries, nil
}
