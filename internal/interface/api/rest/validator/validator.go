package validator

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// ValidatePage parses the page query parameter. An absent value means the
// first page and anything below one clamps to it.
func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}

	p, err := strconv.Atoi(page)
	if err != nil {
		return 0, errors.New("page must be an integer")
	}
	if p < 1 {
		p = 1
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}
