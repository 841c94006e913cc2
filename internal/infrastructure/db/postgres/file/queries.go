package file

const (
	InsertFile = `
		INSERT INTO files (id, filename, content_type, size, content, session_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, filename, content_type, size, session_id, description, created_at, updated_at
	`
	SelectFileByID = `
		SELECT id, filename, content_type, size, session_id, description, created_at, updated_at
		FROM files
		WHERE id = $1
	`
	SelectFileContentByID = `
		SELECT id, filename, content_type, size, content, session_id, description, created_at, updated_at
		FROM files
		WHERE id = $1
	`
	SelectFilesPage = `
		SELECT id, filename, content_type, size, session_id, description, created_at, updated_at
		FROM files
		WHERE $1::uuid IS NULL OR session_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET ( ($3 - 1) * $2 )
	`
	CountFiles = `
		SELECT COUNT(*)
		FROM files
		WHERE $1::uuid IS NULL OR session_id = $1
	`
	UpdateFileMetadataByID = `
		UPDATE files
		SET filename = COALESCE($2, filename),
		    description = COALESCE($3, description),
		    updated_at = now()
		WHERE id = $1
		RETURNING
		  id, filename, content_type, size, session_id, description, created_at, updated_at
	`
	ReplaceFileContentByID = `
		UPDATE files
		SET content = $2,
		    size = $3,
		    content_type = $4,
		    filename = COALESCE($5, filename),
		    updated_at = now()
		WHERE id = $1
		RETURNING
		  id, filename, content_type, size, session_id, description, created_at, updated_at
	`
	DeleteFileByID = `
		DELETE FROM files
		WHERE id = $1
		RETURNING
		  id, filename, content_type, size, session_id, description, created_at, updated_at
	`
)
