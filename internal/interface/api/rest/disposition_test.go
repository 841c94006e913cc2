package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentDisposition(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"plain ascii",
			"report.txt",
			`attachment; filename="report.txt"`,
		},
		{
			"inner space kept",
			"my report.txt",
			`attachment; filename="my report.txt"`,
		},
		{
			"diacritics folded",
			"résumé.pdf",
			`attachment; filename="resume.pdf"; filename*=UTF-8''r%C3%A9sum%C3%A9.pdf`,
		},
		{
			"cyrillic replaced",
			"отчёт.txt",
			`attachment; filename="_____.txt"; filename*=UTF-8''%D0%BE%D1%82%D1%87%D1%91%D1%82.txt`,
		},
		{
			"quotes and backslashes",
			`a"b\c.txt`,
			`attachment; filename="a_b_c.txt"; filename*=UTF-8''a%22b%5Cc.txt`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contentDisposition(tt.in))
		})
	}
}
