package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	domain "file-storage-api/internal/domain/file"
	"file-storage-api/internal/infrastructure/jwt"
	"file-storage-api/internal/interface/api/rest/dto/file"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
	protectWrites bool,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	// writes can run open, a configured secret puts them behind the token check
	var writes []gin.HandlerFunc
	if protectWrites {
		writes = append(writes, middleware.AuthMiddleware(jwtService))
	}

	r.GET(RouteFiles, fc.GetFilesHandler)
	r.GET(RouteFile, fc.GetFileHandler)
	r.GET(RouteFileDownload, fc.DownloadFileHandler)
	r.POST(RouteFiles, append(writes, fc.CreateFileHandler)...)
	r.PATCH(RouteFile, append(writes, fc.UpdateFileHandler)...)
	r.PUT(RouteFile, append(writes, fc.ReplaceFileHandler)...)
	r.DELETE(RouteFile, append(writes, fc.DeleteFileHandler)...)

	return fc
}

func (fc *FileController) CreateFileHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	var sessionID *uuid.UUID
	if raw, found := c.GetPostForm("session_id"); found {
		ok, id := validator.IsUUID(raw)
		if !ok {
			c.JSON(
				http.StatusBadRequest,
				gin.H{"error": "session_id must be a valid UUID"},
			)
			return
		}
		sessionID = &id
	}

	var description *string
	if raw, found := c.GetPostForm("description"); found {
		description = &raw
	}

	f, err := fc.fileService.CreateFile(c.Request.Context(), fh, sessionID, description)
	if err != nil {
		fc.respondError(c, "CreateFile()", err)
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseFile(*f))
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	var sessionID *uuid.UUID
	if raw, found := c.GetQuery("session_id"); found {
		ok, id := validator.IsUUID(raw)
		if !ok {
			c.JSON(
				http.StatusBadRequest,
				gin.H{"error": "session_id must be a valid UUID"},
			)
			return
		}
		sessionID = &id
	}

	p, err := fc.fileService.FindFiles(c.Request.Context(), sessionID, page)
	if err != nil {
		fc.respondError(c, "FindFiles()", err)
		return
	}

	c.JSON(http.StatusOK, file.ToListResponse(*p))
}

func (fc *FileController) GetFileHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	f, err := fc.fileService.FindFileByID(c.Request.Context(), id)
	if err != nil {
		fc.respondError(c, "FindFileByID()", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) DownloadFileHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	f, err := fc.fileService.DownloadFile(c.Request.Context(), id)
	if err != nil {
		fc.respondError(c, "DownloadFile()", err)
		return
	}

	c.Header("Content-Disposition", contentDisposition(f.Filename))
	c.Header("Content-Length", strconv.FormatInt(f.Size, 10))
	c.Data(http.StatusOK, f.ContentType, f.Content)
}

func (fc *FileController) UpdateFileHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	var req file.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	f, err := fc.fileService.UpdateFileMetadata(c.Request.Context(), id, file.ToMetadataPatch(req))
	if err != nil {
		fc.respondError(c, "UpdateFileMetadata()", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) ReplaceFileHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fc.fileService.ReplaceFileContent(c.Request.Context(), id, fh)
	if err != nil {
		fc.respondError(c, "ReplaceFileContent()", err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*f))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	if err := fc.fileService.DeleteFile(c.Request.Context(), id); err != nil {
		fc.respondError(c, "DeleteFile()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) respondError(c *gin.Context, op string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, domain.ErrPayloadTooLarge):
		c.JSON(
			http.StatusRequestEntityTooLarge,
			gin.H{"error": domain.ErrPayloadTooLarge.Error()},
		)
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(
			http.StatusServiceUnavailable,
			gin.H{"error": domain.ErrStorageUnavailable.Error()},
		)
		fc.logger.Error(op+" error", zap.Error(err))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		fc.logger.Error(op+" error", zap.Error(err))
	}
}
