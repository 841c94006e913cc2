package file

import (
	"context"
)

type Repository interface {
	CreateFile(ctx context.Context, req File) (*File, error)
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	FetchFileContent(ctx context.Context, id ID) (*File, error)
	FetchFilesPage(ctx context.Context, q ListQuery) (Files, int, error)
	UpdateFileMetadata(ctx context.Context, id ID, patch MetadataPatch) (*File, error)
	ReplaceFileContent(ctx context.Context, id ID, swap ContentSwap) (*File, error)
	DeleteFile(ctx context.Context, id ID) (*File, error)
}
