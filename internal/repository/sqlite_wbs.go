package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/wbsimport/internal/db"
	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// wbsColumns is the canonical SELECT column list for wbs.
const wbsColumns = `id, public_id, code, name, schedule_id, parent_id, created_at, is_active`

// SQLiteWBSRepo implements WBSRepo using a SQLite database.
type SQLiteWBSRepo struct {
	db db.DBTX
}

// NewSQLiteWBSRepo creates a new SQLiteWBSRepo.
func NewSQLiteWBSRepo(db db.DBTX) *SQLiteWBSRepo {
	return &SQLiteWBSRepo{db: db}
}

func (r *SQLiteWBSRepo) Find(ctx context.Context, code string, scheduleID int64) (*domain.WBS, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+wbsColumns+` FROM wbs WHERE schedule_id = ? AND code = ?`, scheduleID, code)
	return r.scanNode(row)
}

// Create inserts an active node under scheduleID. A nil parentID makes the
// node a root. A second node with the same code in the same schedule is
// rejected by the unique index.
func (r *SQLiteWBSRepo) Create(ctx context.Context, code, name string, scheduleID int64, parentID *int64) (*domain.WBS, error) {
	n := &domain.WBS{
		PublicID:   uuid.New().String(),
		Code:       code,
		Name:       name,
		ScheduleID: scheduleID,
		ParentID:   parentID,
		CreatedAt:  now(),
		IsActive:   true,
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO wbs (public_id, code, name, schedule_id, parent_id, created_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.PublicID,
		n.Code,
		n.Name,
		n.ScheduleID,
		nullableInt64ToValue(n.ParentID),
		formatTime(n.CreatedAt),
		boolToInt(n.IsActive),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "inserting wbs %q", code)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "reading wbs id")
	}
	n.ID = id
	return n, nil
}

func (r *SQLiteWBSRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.WBS, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+wbsColumns+` FROM wbs WHERE public_id = ?`, publicID)
	return r.scanNode(row)
}

// ListBySchedule returns a schedule's nodes in insertion order, which is the
// order they appeared in the source file.
func (r *SQLiteWBSRepo) ListBySchedule(ctx context.Context, scheduleID int64) ([]*domain.WBS, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+wbsColumns+` FROM wbs WHERE schedule_id = ? ORDER BY id`, scheduleID)
	if err != nil {
		return nil, errors.Wrap(err, "listing wbs by schedule")
	}
	defer rows.Close()
	return r.scanNodes(rows)
}

func (r *SQLiteWBSRepo) ListChildren(ctx context.Context, parentID int64) ([]*domain.WBS, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+wbsColumns+` FROM wbs WHERE parent_id = ? ORDER BY id`, parentID)
	if err != nil {
		return nil, errors.Wrap(err, "listing child wbs")
	}
	defer rows.Close()
	return r.scanNodes(rows)
}

func (r *SQLiteWBSRepo) scanNode(row scanner) (*domain.WBS, error) {
	var n domain.WBS
	var parentID sql.NullInt64
	var createdAtStr string
	var isActive int

	err := row.Scan(&n.ID, &n.PublicID, &n.Code, &n.Name, &n.ScheduleID, &parentID, &createdAtStr, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "wbs")
		}
		return nil, errors.Wrap(err, "scanning wbs")
	}

	createdAt, err := parseTime(createdAtStr)
	if err != nil {
		return nil, errors.Wrap(err, "parsing created_at")
	}
	n.CreatedAt = createdAt
	n.ParentID = nullInt64Ptr(parentID)
	n.IsActive = intToBool(isActive)
	return &n, nil
}

func (r *SQLiteWBSRepo) scanNodes(rows *sql.Rows) ([]*domain.WBS, error) {
	var nodes []*domain.WBS
	for rows.Next() {
		n, err := r.scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating wbs")
	}
	return nodes, nil
}
