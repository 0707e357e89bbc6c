package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	ApplicationJSON MIME = "application/json"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// IsText reports whether detected is any text/* media type.
func IsText(detected string) bool {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, "text/")
}
