package services

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-storage-api/internal/application/ports"
	domain "file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/mq"
	"file-storage-api/internal/interface/api/rest/dto/file"
)

const (
	defaultMaxFileSize int64 = 10485760
	defaultPageSize          = 10

	maxFilenameLen    = 255
	maxDescriptionLen = 1000

	fallbackFilename    = "unnamed"
	fallbackContentType = "application/octet-stream"

	sniffLen = 512
)

type FileService struct {
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec

	maxFileSize int64
	pageSize    int
}

func NewFileService(
	fileRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	maxFileSize int64,
	pageSize int,
) ports.FileService {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &FileService{
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
		maxFileSize:    maxFileSize,
		pageSize:       pageSize,
	}
}

func (fs *FileService) CreateFile(
	ctx context.Context,
	in *multipart.FileHeader,
	sessionID *uuid.UUID,
	description *string,
) (*domain.File, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	content, err := fs.readContent(in)
	if err != nil {
		return nil, err
	}

	filename, err := normalizeFilename(in.Filename)
	if err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.CreateFile(ctx, domain.File{
		ID:          uuid.New(),
		Filename:    filename,
		ContentType: detectContentType(content, filename, in.Header.Get("Content-Type")),
		Size:        int64(len(content)),
		Content:     content,
		SessionID:   sessionID,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPost,
		FileID:  out.ID.String(),
		Payload: file.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

func (fs *FileService) FindFiles(ctx context.Context, sessionID *uuid.UUID, page int) (*domain.Page, error) {
	if page < 1 {
		page = 1
	}

	files, total, err := fs.fileRepository.FetchFilesPage(ctx, domain.ListQuery{
		SessionID: sessionID,
		Page:      page,
		Limit:     fs.pageSize,
	})
	if err != nil {
		return nil, err
	}

	return &domain.Page{
		Items: files,
		Total: total,
		Page:  page,
		Limit: fs.pageSize,
	}, nil
}

func (fs *FileService) FindFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (fs *FileService) DownloadFile(ctx context.Context, id domain.ID) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileContent(ctx, id)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (fs *FileService) UpdateFileMetadata(ctx context.Context, id domain.ID, patch domain.MetadataPatch) (*domain.File, error) {
	// An empty patch mutates nothing, so report the current state as is.
	if patch.Filename == nil && patch.Description == nil {
		return fs.fileRepository.FetchFileByID(ctx, id)
	}

	if patch.Filename != nil {
		if strings.TrimSpace(*patch.Filename) == "" {
			return nil, domain.NewValidationError("filename", "must not be empty")
		}
		name, err := normalizeFilename(*patch.Filename)
		if err != nil {
			return nil, err
		}
		patch.Filename = &name
	}
	if err := validateDescription(patch.Description); err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.UpdateFileMetadata(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPatch,
		FileID:  out.ID.String(),
		Payload: file.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_updated_total").Inc()

	return out, nil
}

func (fs *FileService) ReplaceFileContent(ctx context.Context, id domain.ID, in *multipart.FileHeader) (*domain.File, error) {
	content, err := fs.readContent(in)
	if err != nil {
		return nil, err
	}

	swap := domain.ContentSwap{
		Size:    int64(len(content)),
		Content: content,
	}

	// A blank part filename keeps the stored one.
	filename := ""
	if strings.TrimSpace(in.Filename) != "" {
		filename, err = normalizeFilename(in.Filename)
		if err != nil {
			return nil, err
		}
		swap.Filename = &filename
	}
	swap.ContentType = detectContentType(content, filename, in.Header.Get("Content-Type"))

	out, err := fs.fileRepository.ReplaceFileContent(ctx, id, swap)
	if err != nil {
		return nil, err
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPut,
		FileID:  out.ID.String(),
		Payload: file.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_replaced_total").Inc()

	return out, nil
}

func (fs *FileService) DeleteFile(ctx context.Context, id domain.ID) error {
	out, err := fs.fileRepository.DeleteFile(ctx, id)
	if err != nil {
		return err
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodDelete,
		FileID:  out.ID.String(),
		Payload: file.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

// readContent pulls the whole part into memory, bounded by the size cap.
// The cap is checked on the declared size first and on the actual bytes
// after reading; exactly the cap is still accepted.
func (fs *FileService) readContent(in *multipart.FileHeader) ([]byte, error) {
	if in.Size > fs.maxFileSize {
		return nil, domain.ErrPayloadTooLarge
	}

	f, err := in.Open()
	if err != nil {
		return nil, domain.NewValidationError("file", "cannot be read")
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, fs.maxFileSize+1))
	if err != nil {
		return nil, domain.NewValidationError("file", "cannot be read")
	}
	if len(content) == 0 {
		return nil, domain.NewValidationError("file", "must not be empty")
	}
	if int64(len(content)) > fs.maxFileSize {
		return nil, domain.ErrPayloadTooLarge
	}

	return content, nil
}

// normalizeFilename reduces a client-supplied name to a bare file name:
// trim, drop control characters, strip any path. Names that normalize to
// nothing fall back to "unnamed".
func normalizeFilename(original string) (string, error) {
	s := strings.TrimSpace(original)
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "/" || s == "" {
		return fallbackFilename, nil
	}
	if utf8.RuneCountInString(s) > maxFilenameLen {
		return "", domain.NewValidationError("filename", "must be at most 255 characters")
	}

	return s, nil
}

// detectContentType never trusts the declared type outright: the sniffed
// type wins, the extension and the client header only break octet-stream
// ties.
func detectContentType(content []byte, filename, declared string) string {
	sniff := content
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	if ct := http.DetectContentType(sniff); ct != fallbackContentType {
		return ct
	}
	if byExt := mime.TypeByExtension(path.Ext(filename)); byExt != "" {
		return byExt
	}
	if declared != "" {
		return declared
	}

	return fallbackContentType
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		return domain.NewValidationError("description", "must be at most 1000 characters")
	}

	return nil
}
