package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID          uuid.UUID  `json:"id"`
		Filename    string     `json:"filename"`
		ContentType string     `json:"content_type"`
		Size        int64      `json:"size"`
		SessionID   *uuid.UUID `json:"session_id"`
		Description *string    `json:"description"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   time.Time  `json:"updated_at"`
	}
	Files []File

	ListResponse struct {
		Items      Files `json:"items"`
		Total      int   `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"total_pages"`
		HasNext    bool  `json:"has_next"`
		HasPrev    bool  `json:"has_prev"`
	}
)
