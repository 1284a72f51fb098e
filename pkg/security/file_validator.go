package security

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Lowercased file extension
	DetectedMIME string // MIME type sniffed from content
	Error        string // User-facing reason when Valid is false
}

// Magic byte signatures for resume documents
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".txt":  {},                                                 // No signature; MIME sniffing decides
}

// Allowed MIME types per extension. application/octet-stream is never accepted.
var allowedMIME = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".txt":  {"text/plain"},
}

// AllowedResumeExtensions in display order.
var AllowedResumeExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// ValidateResume runs the extension, size, magic byte and sniffed MIME checks.
func ValidateResume(filename string, data []byte, maxBytes int64) FileValidationResult {
	result := FileValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "File has no extension."
		return result
	}
	result.Extension = ext

	if _, ok := allowedMIME[ext]; !ok {
		result.Error = fmt.Sprintf("File extension %q is not allowed. Allowed extensions are: %s.",
			ext, strings.Join(AllowedResumeExtensions, ", "))
		return result
	}

	if len(data) == 0 {
		result.Error = "The submitted file is empty."
		return result
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		result.Error = fmt.Sprintf("File is too large. Maximum size is %d bytes.", maxBytes)
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "File content does not match its extension."
		return result
	}

	result.DetectedMIME = mimetype.Detect(data).String()
	if !mimeAllowed(ext, result.DetectedMIME) {
		result.Error = "File type not allowed: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	signatures := magicBytes[ext]
	if len(signatures) == 0 {
		return true
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

func mimeAllowed(ext, detected string) bool {
	// mimetype reports parameters, e.g. "text/plain; charset=utf-8"
	base, _, _ := strings.Cut(detected, ";")
	base = strings.TrimSpace(base)
	for _, m := range allowedMIME[ext] {
		if base == m {
			return true
		}
	}
	return false
}
