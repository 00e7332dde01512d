package middleware

import (
	"context"
	"net/http"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
)

type languageKey struct{}

// Language resolves the request language from ?lang= and Accept-Language.
func Language(fallback i18n.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.Resolve(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), fallback)
			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), languageKey{}, lang)))
		})
	}
}

// LanguageFrom 返回请求上下文中的语言；未经过 Language 中间件时为空，由服务使用其默认语言。
func LanguageFrom(ctx context.Context) i18n.Language {
	lang, _ := ctx.Value(languageKey{}).(i18n.Language)
	return lang
}
