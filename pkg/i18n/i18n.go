package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Locale represents a supported language
type Locale string

const (
	LocaleKo Locale = "ko"
	LocaleEn Locale = "en"
)

var defaultLocale = LocaleKo

// Bundle holds all translations for all locales
type Bundle struct {
	mu           sync.RWMutex
	translations map[Locale]map[string]string
	fallback     Locale
}

// NewBundle creates a new i18n bundle with the given fallback locale
func NewBundle(fallback Locale) *Bundle {
	return &Bundle{
		translations: make(map[Locale]map[string]string),
		fallback:     fallback,
	}
}

var (
	defaultBundle     *Bundle
	defaultBundleOnce sync.Once
)

// Default returns a process-wide bundle preloaded with DefaultMessages
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		defaultBundle = NewBundle(defaultLocale)
		for locale, msgs := range DefaultMessages() {
			defaultBundle.LoadMessages(locale, msgs)
		}
	})
	return defaultBundle
}

// LoadDir loads all JSON translation files from a directory.
// Files should be named like: ko.json, en.json
func (b *Bundle) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read i18n dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		locale := Locale(strings.TrimSuffix(entry.Name(), ".json"))
		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var msgs map[string]string
		if err := json.Unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		b.LoadMessages(locale, msgs)
	}

	return nil
}

// LoadMessages merges translations for a specific locale
func (b *Bundle) LoadMessages(locale Locale, messages map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.translations[locale]
	if !ok {
		existing = make(map[string]string, len(messages))
		b.translations[locale] = existing
	}
	for k, v := range messages {
		existing[k] = v
	}
}

// T translates a message key for the given locale.
// Falls back to the bundle's fallback locale, then returns the key itself.
func (b *Bundle) T(locale Locale, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	msg, ok := b.lookup(locale, key)
	if !ok && locale != b.fallback {
		msg, ok = b.lookup(b.fallback, key)
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func (b *Bundle) lookup(locale Locale, key string) (string, bool) {
	msgs, ok := b.translations[locale]
	if !ok {
		return "", false
	}
	msg, ok := msgs[key]
	return msg, ok
}

// ParseAcceptLanguage parses the Accept-Language header and returns the best matching locale
func ParseAcceptLanguage(header string) Locale {
	if header == "" {
		return defaultLocale
	}

	// Simple parsing: first supported language tag wins, q-values are ignored
	for _, part := range strings.Split(header, ",") {
		lang := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))

		switch {
		case strings.HasPrefix(lang, "ko"):
			return LocaleKo
		case strings.HasPrefix(lang, "en"):
			return LocaleEn
		}
	}

	return defaultLocale
}
