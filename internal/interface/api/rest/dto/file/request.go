package file

// UpdateRequest is the PATCH body. Absent fields stay nil and keep the
// stored values.
type UpdateRequest struct {
	Filename    *string `json:"filename"`
	Description *string `json:"description"`
}
