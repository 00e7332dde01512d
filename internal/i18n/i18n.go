package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language 表示站点支持的界面语言。
type Language string

const (
	French  Language = "fr"
	English Language = "en"
)

// Translator resolves message keys to display text.
type Translator interface {
	T(key string) string
}

var tables = map[Language]map[string]string{
	French:  french,
	English: english,
}

// supported 的顺序与 matcher 的索引一一对应。
var supported = []Language{French, English}

var matcher = language.NewMatcher([]language.Tag{language.French, language.English})

type catalog struct {
	entries map[string]string
}

// T 返回 key 对应的文案，缺失时原样返回 key。
func (c catalog) T(key string) string {
	if value, ok := c.entries[key]; ok && value != "" {
		return value
	}
	return key
}

// For returns the translator of lang, or the French one for unknown languages.
func For(lang Language) Translator {
	entries, ok := tables[lang]
	if !ok {
		entries = tables[French]
	}
	return catalog{entries: entries}
}

// Parse 解析语言代码，如 "en"、"EN"、"fr-FR"。
func Parse(raw string) (Language, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", false
	}
	if i := strings.IndexAny(raw, "-_"); i > 0 {
		raw = raw[:i]
	}
	lang := Language(raw)
	if _, ok := tables[lang]; !ok {
		return "", false
	}
	return lang, true
}

// Resolve picks the language for a request: an explicit query value wins,
// then the Accept-Language header, then fallback.
func Resolve(query, acceptLanguage string, fallback Language) Language {
	if lang, ok := Parse(query); ok {
		return lang
	}

	if strings.TrimSpace(acceptLanguage) != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No && idx >= 0 && idx < len(supported) {
				return supported[idx]
			}
		}
	}

	if _, ok := tables[fallback]; ok {
		return fallback
	}
	return French
}

// Supported lists the available languages.
func Supported() []Language {
	return append([]Language(nil), supported...)
}

// Table returns a copy of the full string table of lang.
func Table(lang Language) (map[string]string, bool) {
	entries, ok := tables[lang]
	if !ok {
		return nil, false
	}
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return copied, true
}
