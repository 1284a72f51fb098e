package security

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	txt := []byte("Jane Doe\nSenior Go engineer\n")

	tests := []struct {
		name     string
		filename string
		data     []byte
		max      int64
		valid    bool
	}{
		{"pdf", "cv.PDF", pdf, 1 << 20, true},
		{"plain text", "cv.txt", txt, 1 << 20, true},
		{"no extension", "cv", pdf, 1 << 20, false},
		{"image rejected", "cv.png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 1 << 20, false},
		{"spoofed pdf", "cv.pdf", txt, 1 << 20, false},
		{"empty file", "cv.txt", []byte{}, 1 << 20, false},
		{"too large", "cv.txt", bytes.Repeat([]byte("a"), 64), 32, false},
		{"elf as txt", "cv.txt", []byte{0x7F, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0}, 1 << 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateResume(tt.filename, tt.data, tt.max)
			assert.Equal(t, tt.valid, res.Valid, res.Error)
			if !tt.valid {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestMimeAllowed(t *testing.T) {
	assert.True(t, mimeAllowed(".txt", "text/plain; charset=utf-8"))
	assert.False(t, mimeAllowed(".txt", "application/octet-stream"))
	assert.True(t, mimeAllowed(".docx", "application/zip"))
}
