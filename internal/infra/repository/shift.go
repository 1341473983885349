package repository

import (
	"context"
	"errors"
	"time"

	"shiftboard/internal/domain/shift"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ShiftRepository struct {
	db db.DBTX
}

func NewShiftRepository(dbtx db.DBTX) *ShiftRepository {
	return &ShiftRepository{db: dbtx}
}

// Assignee and creator display fields are joined in so the handlers never
// issue follow-up user lookups.
const shiftSelect = `
	SELECT s.id, s.company_id, s.title, s.start_time, s.end_time,
	       s.assigned_to, a.name, a.email,
	       s.created_by, c.name,
	       s.status, s.notes, s.created_at, s.updated_at
	FROM shifts s
	JOIN users a ON a.id = s.assigned_to
	JOIN users c ON c.id = s.created_by`

func scanShift(row pgx.Row) (*readmodel.ShiftRM, error) {
	var rm readmodel.ShiftRM
	err := row.Scan(
		&rm.ID, &rm.CompanyID, &rm.Title, &rm.StartTime, &rm.EndTime,
		&rm.AssignedTo, &rm.AssigneeName, &rm.AssigneeEmail,
		&rm.CreatedBy, &rm.CreatorName,
		&rm.Status, &rm.Notes, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *ShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ShiftRM, error) {
	rm, err := scanShift(r.db.QueryRow(ctx, shiftSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("shift not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shift by ID", err)
	}
	return rm, nil
}

func (r *ShiftRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.ShiftRM, error) {
	rows, err := r.db.Query(ctx, shiftSelect+` WHERE s.company_id = $1 ORDER BY s.start_time`, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shifts by company", err)
	}
	return collectShifts(rows)
}

func (r *ShiftRepository) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]readmodel.ShiftRM, error) {
	rows, err := r.db.Query(ctx, shiftSelect+` WHERE s.assigned_to = $1 ORDER BY s.start_time`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shifts by assignee", err)
	}
	return collectShifts(rows)
}

func collectShifts(rows pgx.Rows) ([]readmodel.ShiftRM, error) {
	defer rows.Close()

	var shifts []readmodel.ShiftRM
	for rows.Next() {
		rm, err := scanShift(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan shift row", err)
		}
		shifts = append(shifts, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shift rows", err)
	}
	return shifts, nil
}

func (r *ShiftRepository) Create(ctx context.Context, s *shift.Shift) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO shifts (id, company_id, title, start_time, end_time, assigned_to, created_by, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID(), s.CompanyID(), s.Title(), s.StartTime(), s.EndTime(),
		s.AssignedTo(), s.CreatedBy(), s.Status().String(), s.Notes())
	if err != nil {
		return infra.WrapRepoErr("failed to create shift", err)
	}
	return nil
}

type UpdateShiftParams struct {
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	AssignedTo uuid.UUID
	Status     shift.Status
	Notes      string
}

// Update is a plain last-write-wins overwrite; concurrent writers are not
// coordinated beyond row-level atomicity.
func (r *ShiftRepository) Update(ctx context.Context, id uuid.UUID, params UpdateShiftParams) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE shifts
		 SET title = $2, start_time = $3, end_time = $4, assigned_to = $5, status = $6, notes = $7, updated_at = now()
		 WHERE id = $1`,
		id, params.Title, params.StartTime, params.EndTime, params.AssignedTo, params.Status.String(), params.Notes)
	if err != nil {
		return infra.WrapRepoErr("failed to update shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete shift", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
