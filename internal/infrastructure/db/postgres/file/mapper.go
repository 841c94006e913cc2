package file

import (
	domain "file-storage-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:          model.ID,
		Filename:    model.Filename,
		ContentType: model.ContentType,
		Size:        model.Size,
		Content:     model.Content,
		SessionID:   model.SessionID,
		Description: model.Description,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, m := range *models {
		fs[idx] = fromDBModel(m)
	}

	return fs
}
