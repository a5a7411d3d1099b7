// Package i18n renders localized error messages from the "errors" catalog
// namespace.
package i18n

import (
	"bytes"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/numberguess/internal/platform/i18n/catalog"
)

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Namespace is the catalog namespace holding error templates.
const Namespace = "errors"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale    string
	messages  map[Code]string
	templates sync.Map // Code -> *template.Template
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}
)

// GetCatalog returns the catalog for the best matching locale, falling back
// to en-US.
func GetCatalog(locale string) *Catalog {
	resolvedLocale, messages := i18ncatalog.Default().NamespaceMessagesWithFallback(locale, Namespace)

	catalogsMu.RLock()
	c, ok := catalogs[resolvedLocale]
	catalogsMu.RUnlock()
	if ok {
		return c
	}

	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[resolvedLocale]; ok {
		return existing
	}
	built := NewCatalog(resolvedLocale, messages)
	catalogs[resolvedLocale] = built
	return built
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

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Has reports whether the catalog translates code.
func (c *Catalog) Has(code Code) bool {
	_, ok := c.messages[code]
	return ok
}

// Format renders the message template with the given metadata.
// Missing codes render as the code itself; broken templates render raw.
// Missing metadata keys render as "<no value>".
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.messages[code]
	if !ok {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	tmpl, err := c.template(code, raw)
	if err != nil {
		return raw
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}

func (c *Catalog) template(code Code, raw string) (*template.Template, error) {
	if cached, ok := c.templates.Load(code); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New(code).Parse(raw)
	if err != nil {
		return nil, err
	}
	c.templates.Store(code, tmpl)
	return tmpl, nil
}
