package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domain "file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/db/postgres"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and the pgxmock pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DBTX
}

func NewRepository(db DBTX) domain.Repository {
	return &Repository{db: db}
}

// mapErr translates driver failures into domain errors. Row absence means the
// record does not exist; value errors are the caller's fault; everything else
// is the store being unavailable.
func mapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if postgres.IsPgDataError(err) {
		return fmt.Errorf("%s: %w", op, domain.NewValidationError("request", err.Error()))
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

func (r *Repository) CreateFile(ctx context.Context, req domain.File) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.ID, req.Filename, req.ContentType, req.Size, req.Content, req.SessionID, req.Description,
	).Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.Size,
		&f.SessionID,
		&f.Description,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr("create file", err)
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, SelectFileByID, id).Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.Size,
		&f.SessionID,
		&f.Description,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr("fetch file", err)
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFileContent(ctx context.Context, id domain.ID) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, SelectFileContentByID, id).Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.Size,
		&f.Content,
		&f.SessionID,
		&f.Description,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr("fetch file content", err)
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFilesPage(ctx context.Context, q domain.ListQuery) (domain.Files, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, CountFiles, q.SessionID).Scan(&total); err != nil {
		return nil, 0, mapErr("count files", err)
	}

	rows, err := r.db.Query(ctx, SelectFilesPage, q.SessionID, q.Limit, q.Page)
	if err != nil {
		return nil, 0, mapErr("fetch files page", err)
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.Filename,
			&f.ContentType,
			&f.Size,
			&f.SessionID,
			&f.Description,

			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, 0, mapErr("scan files page", err)
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, mapErr("fetch files page", err)
	}

	return fromDBModels(&fs), total, nil
}

func (r *Repository) UpdateFileMetadata(ctx context.Context, id domain.ID, patch domain.MetadataPatch) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, UpdateFileMetadataByID, id, patch.Filename, patch.Description).Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.Size,
		&f.SessionID,
		&f.Description,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr("update file metadata", err)
	}

	return fromDBModel(f), nil
}

func (r *Repository) ReplaceFileContent(ctx context.Context, id domain.ID, swap domain.ContentSwap) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		ReplaceFileContentByID,
		id, swap.Content, swap.Size, swap.ContentType, swap.Filename,
	).Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.Size,
		&f.SessionID,
		&f.Description,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr("replace file content", err)
	}

	return fromDBModel(f), nil
}

func (r *Repository) DeleteFile(ctx context.Context, id domain.ID) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(ctx, DeleteFileByID, id).Scan(
		&f.ID,
		&f.Filename,
		&f.ContentType,
		&f.Size,
		&f.SessionID,
		&f.Description,

		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr("delete file", err)
	}

	return fromDBModel(f), nil
}
