package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/wbsimport/internal/db"
	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/pkg/errors"
)

// SQLiteSourceFileRepo implements SourceFileRepo using a SQLite database.
type SQLiteSourceFileRepo struct {
	db db.DBTX
}

// NewSQLiteSourceFileRepo creates a new SQLiteSourceFileRepo.
func NewSQLiteSourceFileRepo(db db.DBTX) *SQLiteSourceFileRepo {
	return &SQLiteSourceFileRepo{db: db}
}

// Create inserts f and sets its ID. PublicID is supplied by the caller since
// it also names the stored file on disk.
func (r *SQLiteSourceFileRepo) Create(ctx context.Context, f *domain.SourceFile) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO source_files (public_id, name, extension, stored_path, created_at, is_active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.PublicID, f.Name, f.Extension, f.StoredPath, formatTime(f.CreatedAt), boolToInt(f.IsActive),
	)
	if err != nil {
		return errors.Wrap(err, "inserting source file")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "reading source file id")
	}
	f.ID = id
	return nil
}

func (r *SQLiteSourceFileRepo) GetByPublicID(ctx context.Context, publicID string) (*domain.SourceFile, error) {
	var f domain.SourceFile
	var createdAtStr string
	var isActive int

	err := r.db.QueryRowContext(ctx,
		`SELECT id, public_id, name, extension, stored_path, created_at, is_active
		FROM source_files WHERE public_id = ?`, publicID,
	).Scan(&f.ID, &f.PublicID, &f.Name, &f.Extension, &f.StoredPath, &createdAtStr, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(ErrNotFound, "source file")
		}
		return nil, errors.Wrap(err, "scanning source file")
	}

	createdAt, err := parseTime(createdAtStr)
	if err != nil {
		return nil, errors.Wrap(err, "parsing created_at")
	}
	f.CreatedAt = createdAt
	f.IsActive = intToBool(isActive)
	return &f, nil
}
