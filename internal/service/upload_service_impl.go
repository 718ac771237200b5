package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/repository"
)

type uploadService struct {
	dir      string
	files    repository.SourceFileRepo
	registry *importer.Registry
	imports  ImportService
	observer UseCaseObserver
}

// NewUploadService stores uploads under dir and imports them with imports.
func NewUploadService(
	dir string,
	files repository.SourceFileRepo,
	registry *importer.Registry,
	imports ImportService,
	observers ...UseCaseObserver,
) UploadService {
	if registry == nil {
		registry = importer.NewRegistry()
	}
	return &uploadService{
		dir:      dir,
		files:    files,
		registry: registry,
		imports:  imports,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Upload keeps the raw bytes as <dir>/<public_id>.<ext>, records the file
// and imports its projects. Unsupported extensions are rejected before
// anything is written.
func (s *uploadService) Upload(ctx context.Context, filename string, r io.Reader) (_ *UploadResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"filename": filename}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "upload",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	parser, err := s.registry.ForFile(filename)
	if err != nil {
		return nil, err
	}

	file := &domain.SourceFile{
		PublicID:  uuid.New().String(),
		Name:      filepath.Base(filename),
		Extension: parser.Format(),
		IsActive:  true,
	}
	file.StoredPath = filepath.Join(s.dir, file.PublicID+"."+file.Extension)
	fields["file_id"] = file.PublicID

	if err := s.store(file.StoredPath, r); err != nil {
		return nil, err
	}
	if err := s.files.Create(ctx, file); err != nil {
		return nil, errors.Wrap(err, "recording source file")
	}

	src, err := s.registry.ParseFile(file.StoredPath)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableSource, "%s: %v", file.Name, err)
	}
	res, err := s.imports.ImportSource(ctx, src)
	if err != nil {
		return nil, err
	}
	fields["projects"] = len(res.Projects)
	return &UploadResult{FileID: file.PublicID, Projects: res.Projects}, nil
}

func (s *uploadService) store(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating upload directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating upload file")
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrap(err, "writing upload file")
	}
	return errors.Wrap(f.Close(), "closing upload file")
}
