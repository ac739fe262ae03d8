// Package i18n renders domain error codes as user-facing messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/minigames/internal/platform/i18n/catalog"
)

// Code is the catalog key for an error message.
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	// catalogs caches catalogs built from the bundle by locale.
	catalogs = map[string]*Catalog{}
)

// GetCatalog returns the catalog for the given locale.
// Falls back to en-US if the locale is not found.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	bundle := i18ncatalog.Default()
	resolvedLocale, messages := bundle.NamespaceMessagesWithFallback(bundle.Match(requested), i18ncatalog.ErrorsNamespace)
	if c, ok := lookupCatalog(resolvedLocale); ok {
		return c
	}

	built := NewCatalog(resolvedLocale, messages)
	return storeCatalogIfAbsent(resolvedLocale, built)
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
// Missing metadata renders as "<no value>".
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// Localize renders err for the locale. Domain errors use their code template;
// anything else falls back to err.Error().
func Localize(locale string, err error) string {
	if err == nil {
		return ""
	}
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown {
		return err.Error()
	}
	return GetCatalog(locale).Format(string(code), apperrors.MetadataOf(err))
}

// LocalizedError carries a message already rendered for a locale while
// keeping the wrapped error reachable through errors.Is and errors.As.
type LocalizedError struct {
	Locale  string
	Message string
	Err     error
}

func (e *LocalizedError) Error() string { return e.Message }

func (e *LocalizedError) Unwrap() error { return e.Err }

// LocalizeError wraps err with its Localize rendering. It returns nil for a
// nil err.
func LocalizeError(locale string, err error) error {
	if err == nil {
		return nil
	}
	return &LocalizedError{Locale: locale, Message: Localize(locale, err), Err: err}
}

// NewCatalog creates a new catalog with the given locale and messages.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cloned := make(map[Code]string, len(messages))
	for key, value := range messages {
		cloned[key] = value
	}
	return &Catalog{
		locale:   locale,
		messages: cloned,
	}
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func storeCatalogIfAbsent(locale string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[locale]; ok {
		return existing
	}
	catalogs[locale] = candidate
	return candidate
}
