package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID = uuid.UUID

	File struct {
		ID          ID
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

	// ListQuery selects one metadata page. A nil SessionID returns every
	// record, including those stored without a session.
	ListQuery struct {
		SessionID *uuid.UUID
		Page      int
		Limit     int
	}

	// MetadataPatch carries only the fields the caller supplied.
	// A nil field keeps the stored value.
	MetadataPatch struct {
		Filename    *string
		Description *string
	}

	// ContentSwap replaces the stored bytes wholesale. Size and ContentType
	// are always recomputed from the new content; Filename is optional.
	ContentSwap struct {
		Filename    *string
		ContentType string
		Size        int64
		Content     []byte
	}

	// Page is one slice of the listing plus the totals the pagination
	// envelope is built from.
	Page struct {
		Items Files
		Total int
		Page  int
		Limit int
	}
)
