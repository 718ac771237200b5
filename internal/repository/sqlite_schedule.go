package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/wbsimport/internal/db"
	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const scheduleColumns = `id, public_id, title, created_at, is_active`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

// Create mints a public id, stamps the creation time and inserts an active
// schedule. The returned record carries the id assigned by the store.
func (r *SQLiteScheduleRepo) Create(ctx context.Context, title string) (*domain.Schedule, error) {
	s := &domain.Schedule{
		PublicID:  uuid.New().String(),
		Title:     title,
		CreatedAt: now(),
		IsActive:  true,
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO schedules (public_id, title, created_at, is_active) VALUES (?, ?, ?, ?)`,
		s.PublicID, s.Title, formatTime(s.CreatedAt), boolToInt(s.IsActive),
	)
	if err != nil {
		return nil, errors.Wrap(err, "inserting schedule")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "reading schedule id")
	}
	s.ID = id
	return s, nil
}

func (r *SQLiteScheduleRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.Schedule, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE public_id = ?`, publicID)
	return r.scanSchedule(row)
}

// FindActiveByTitle returns the oldest active schedule with the given title.
func (r *SQLiteScheduleRepo) FindActiveByTitle(ctx context.Context, title string) (*domain.Schedule, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE title = ? AND is_active = 1 ORDER BY id LIMIT 1`, title)
	return r.scanSchedule(row)
}

func (r *SQLiteScheduleRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE is_active = 1 ORDER BY id`
	if includeInactive {
		query = `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "listing schedules")
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := r.scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating schedules")
	}
	return schedules, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteScheduleRepo) scanSchedule(row scanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var createdAtStr string
	var isActive int

	if err := row.Scan(&s.ID, &s.PublicID, &s.Title, &createdAtStr, &isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "schedule")
		}
		return nil, errors.Wrap(err, "scanning schedule")
	}

	createdAt, err := parseTime(createdAtStr)
	if err != nil {
		return nil, errors.Wrap(err, "parsing created_at")
	}
	s.CreatedAt = createdAt
	s.IsActive = intToBool(isActive)
	return &s, nil
}
