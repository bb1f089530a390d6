package media

import (
	"path"
	"strings"
)

// Kind classifies a media path for presentation purposes.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// videoExtensions is the fixed allow-list for video classification. Anything
// outside it renders as an image; there is no content sniffing.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".wmv":  {},
	".flv":  {},
	".webm": {},
	".mkv":  {},
}

// Classify infers the media kind from the file extension. The check is pure
// and stateless; unknown or missing extensions classify as images.
func Classify(mediaPath string) Kind {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(mediaPath)))
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo
	}
	return KindImage
}

// Resolver turns relative media paths returned by the file-store collaborator
// into absolute URLs. Paths that already carry a scheme pass through as-is.
type Resolver struct {
	base string
}

// NewResolver constructs a resolver with the given media base URL.
func NewResolver(base string) *Resolver {
	return &Resolver{base: strings.TrimRight(strings.TrimSpace(base), "/")}
}

// Resolve prefixes the media base unless the path is already absolute.
func (r *Resolver) Resolve(mediaPath string) string {
	trimmed := strings.TrimSpace(mediaPath)
	if trimmed == "" {
		return ""
	}
	if hasScheme(trimmed) {
		return trimmed
	}
	if r == nil || r.base == "" {
		return trimmed
	}
	return r.base + "/" + strings.TrimLeft(trimmed, "/")
}

func hasScheme(value string) bool {
	return strings.HasPrefix(value, "http://") ||
		strings.HasPrefix(value, "https://") ||
		strings.HasPrefix(value, "//")
}
