package file

import (
	domain "file-storage-api/internal/domain/file"
)

func ToResponseFile(fDomain domain.File) File {
	var f = File{
		ID:          fDomain.ID,
		Filename:    fDomain.Filename,
		ContentType: fDomain.ContentType,
		Size:        fDomain.Size,
		SessionID:   fDomain.SessionID,
		Description: fDomain.Description,
		CreatedAt:   fDomain.CreatedAt.UTC(),
		UpdatedAt:   fDomain.UpdatedAt.UTC(),
	}

	return f
}

func ToResponseFiles(fsDomain domain.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

// ToListResponse computes the envelope totals. total_pages never drops below
// one, so an empty listing still reads as page 1 of 1.
func ToListResponse(pDomain domain.Page) ListResponse {
	totalPages := (pDomain.Total + pDomain.Limit - 1) / pDomain.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	return ListResponse{
		Items:      ToResponseFiles(pDomain.Items),
		Total:      pDomain.Total,
		Page:       pDomain.Page,
		Limit:      pDomain.Limit,
		TotalPages: totalPages,
		HasNext:    pDomain.Page < totalPages,
		HasPrev:    pDomain.Page > 1,
	}
}

func ToMetadataPatch(r UpdateRequest) domain.MetadataPatch {
	return domain.MetadataPatch{
		Filename:    r.Filename,
		Description: r.Description,
	}
}
