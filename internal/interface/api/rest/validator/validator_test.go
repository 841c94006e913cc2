package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"absent defaults to first page", "", 1, false},
		{"plain number", "3", 3, false},
		{"first page", "1", 1, false},
		{"zero clamps to first page", "0", 1, false},
		{"negative clamps to first page", "-2", 1, false},
		{"garbage rejected", "abc", 0, true},
		{"float rejected", "2.5", 0, true},
		{"padded rejected", " 3", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePage(tt.in)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsUUID(t *testing.T) {
	id := uuid.New()

	ok, got := IsUUID(id.String())
	require.True(t, ok)
	assert.Equal(t, id, got)

	ok, _ = IsUUID("not-a-uuid")
	assert.False(t, ok)

	ok, _ = IsUUID("")
	assert.False(t, ok)
}
