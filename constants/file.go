package constants

import (
	"path/filepath"
	"strings"
)

// Accepted and rejected upload media types.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	// MediaTypeDOC is the legacy binary Word format. It is recognized so we can
	// reject it with a clear error instead of a generic unsupported-type one.
	MediaTypeDOC = "application/msword"

	MediaTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var mediaTypeByExt = map[string]string{
	"pdf":  MediaTypePDF,
	"docx": MediaTypeDOCX,
	"doc":  MediaTypeDOC,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// DetectMediaType maps a file name to a media type by extension.
// Returns "" for extensions we do not recognize at all.
func DetectMediaType(filename string) string {
	return mediaTypeByExt[NormalizeExt(filepath.Ext(filename))]
}

// IsParseable reports whether documents of this media type can be text-extracted.
func IsParseable(mediaType string) bool {
	return mediaType == MediaTypePDF || mediaType == MediaTypeDOCX
}
