package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID          uuid.UUID
		Filename    string
		ContentType string
		Size        int64
		Content     []byte
		SessionID   *uuid.UUID
		Description *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File
)
