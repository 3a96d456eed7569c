// Package locale resolves the UI locale from the locale cookie and carries it
// through the request context.
package locale

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type contextKey struct{}

// cookieMaxAge keeps the selection for a year.
const cookieMaxAge = 365 * 24 * time.Hour

// Resolver validates locale codes against a fixed supported set.
type Resolver struct {
	cookieName string
	fallback   string
	supported  []string
	known      map[string]bool
}

// NewResolver builds a Resolver. Every supported code and the default must be
// valid BCP 47 tags, and the default must be one of the supported codes.
func NewResolver(cookieName, fallback string, supported []string) (*Resolver, error) {
	if cookieName == "" {
		return nil, fmt.Errorf("locale cookie name is required")
	}

	r := &Resolver{
		cookieName: cookieName,
		known:      make(map[string]bool, len(supported)),
	}
	for _, code := range supported {
		canonical, err := canonicalize(code)
		if err != nil {
			return nil, fmt.Errorf("invalid supported locale %q: %w", code, err)
		}
		if !r.known[canonical] {
			r.known[canonical] = true
			r.supported = append(r.supported, canonical)
		}
	}

	def, err := canonicalize(fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", fallback, err)
	}
	if !r.known[def] {
		return nil, fmt.Errorf("default locale %q is not in the supported set", def)
	}
	r.fallback = def

	return r, nil
}

// Default returns the fallback locale.
func (r *Resolver) Default() string {
	return r.fallback
}

// Supported returns the supported locale codes in configuration order.
func (r *Resolver) Supported() []string {
	out := make([]string, len(r.supported))
	copy(out, r.supported)
	return out
}

// CookieName returns the name of the locale cookie.
func (r *Resolver) CookieName() string {
	return r.cookieName
}

// Lookup canonicalizes value and reports whether it is supported.
// Region variants such as "fr-CA" match their base language.
func (r *Resolver) Lookup(value string) (string, bool) {
	code, err := canonicalize(value)
	if err != nil {
		return "", false
	}
	return code, r.known[code]
}

// Resolve returns the supported locale for value or the default.
func (r *Resolver) Resolve(value string) string {
	if code, ok := r.Lookup(value); ok {
		return code
	}
	return r.fallback
}

// FromRequest resolves the locale from the request cookie.
func (r *Resolver) FromRequest(req *http.Request) string {
	cookie, err := req.Cookie(r.cookieName)
	if err != nil {
		return r.fallback
	}
	return r.Resolve(cookie.Value)
}

// Middleware stores the resolved locale in the request context.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := WithLocale(req.Context(), r.FromRequest(req))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// SetCookie persists the locale selection.
func (r *Resolver) SetCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     r.cookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// WithLocale returns a context carrying code.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, contextKey{}, code)
}

// FromContext returns the locale stored by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(contextKey{}).(string)
	return code, ok
}

func canonicalize(value string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	base, _ := tag.Base()
	return base.String(), nil
}
