package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"file-storage-api/internal/domain/file"
)

type FileService interface {
	CreateFile(ctx context.Context, in *multipart.FileHeader, sessionID *uuid.UUID, description *string) (*file.File, error)
	FindFiles(ctx context.Context, sessionID *uuid.UUID, page int) (*file.Page, error)
	FindFileByID(ctx context.Context, id file.ID) (*file.File, error)
	DownloadFile(ctx context.Context, id file.ID) (*file.File, error)
	UpdateFileMetadata(ctx context.Context, id file.ID, patch file.MetadataPatch) (*file.File, error)
	ReplaceFileContent(ctx context.Context, id file.ID, in *multipart.FileHeader) (*file.File, error)
	DeleteFile(ctx context.Context, id file.ID) error
}
