package language

import (
	"context"
	"strings"
	"sync"

	"github.com/goliatone/go-sitenav/content"
)

// Language codes served by the site. UZ is the hardcoded fallback default.
const (
	UZ = "uz"
	RU = "ru"
	EN = "en"

	Default = UZ
)

// Codes lists the supported languages in display order.
var Codes = []string{UZ, RU, EN}

// Supported reports whether code is one of the site languages.
func Supported(code string) bool {
	switch code {
	case UZ, RU, EN:
		return true
	}
	return false
}

// Normalize lowercases and trims the code, substituting the default for
// anything outside the supported set.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if Supported(code) {
		return code
	}
	return Default
}

// ResolveField resolves a language-suffixed text field with the documented
// fallback chain: requested language, then the default language, then the
// bare untranslated field. Every step tolerates missing or empty values and
// the final result may legitimately be the empty string.
//
// The chain applies per field, not per record: a record can surface a uz
// title next to an en description when only some fields were translated.
func ResolveField(fields content.TextFields, base, lang string) string {
	if len(fields) == 0 || base == "" {
		return ""
	}
	lang = Normalize(lang)
	if value := strings.TrimSpace(fields[base+"_"+lang]); value != "" {
		return value
	}
	if value := strings.TrimSpace(fields[base+"_"+Default]); value != "" {
		return value
	}
	return strings.TrimSpace(fields[base])
}

// ResolveLabel resolves a plain language-keyed label map (node titles,
// breadcrumb labels): requested language, then the default, then empty.
func ResolveLabel(labels map[string]string, lang string) string {
	if len(labels) == 0 {
		return ""
	}
	lang = Normalize(lang)
	if value := strings.TrimSpace(labels[lang]); value != "" {
		return value
	}
	return strings.TrimSpace(labels[Default])
}

// Source exposes the persisted "active language" client state. The navigator
// reads it once per visit and threads the value explicitly through resolve,
// dispatch, and render, so a language switch mid-flight cannot split a single
// visit across two languages.
type Source interface {
	Current(ctx context.Context) string
}

// StaticSource always reports the same language.
type StaticSource string

func (s StaticSource) Current(context.Context) string {
	return Normalize(string(s))
}

// MemorySource is a mutable in-process language state, suitable for tests and
// single-client embeddings. The zero value reports the default language.
type MemorySource struct {
	mu   sync.RWMutex
	code string
}

func NewMemorySource(code string) *MemorySource {
	return &MemorySource{code: Normalize(code)}
}

func (s *MemorySource) Current(context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.code == "" {
		return Default
	}
	return s.code
}

func (s *MemorySource) Set(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = Normalize(code)
}
