package handler

import (
	"net/http"

	"github.com/aidar/event-planner/internal/locale"
)

// LocaleHandler обрабатывает выбор языка интерфейса
type LocaleHandler struct {
	resolver *locale.Resolver
}

// NewLocaleHandler создает новый LocaleHandler
func NewLocaleHandler(resolver *locale.Resolver) *LocaleHandler {
	return &LocaleHandler{
		resolver: resolver,
	}
}

// LocaleResponse представляет текущий язык и список доступных
type LocaleResponse struct {
	Locale    string   `json:"locale"`
	Supported []string `json:"supported"`
}

// SetLocaleRequest представляет тело запроса на смену языка
type SetLocaleRequest struct {
	Locale string `json:"locale"`
}

// GetLocale обрабатывает GET /api/locale
func (h *LocaleHandler) GetLocale(w http.ResponseWriter, r *http.Request) {
	current, ok := locale.FromContext(r.Context())
	if !ok {
		current = h.resolver.FromRequest(r)
	}

	RespondWithJSON(w, r, http.StatusOK, LocaleResponse{
		Locale:    current,
		Supported: h.resolver.Supported(),
	})
}

// SetLocale обрабатывает PUT /api/locale
func (h *LocaleHandler) SetLocale(w http.ResponseWriter, r *http.Request) {
	var req SetLocaleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	code, ok := h.resolver.Lookup(req.Locale)
	if !ok {
		RespondWithError(w, r, http.StatusBadRequest, "unsupported locale")
		return
	}

	h.resolver.SetCookie(w, code)
	RespondWithJSON(w, r, http.StatusOK, LocaleResponse{
		Locale:    code,
		Supported: h.resolver.Supported(),
	})
}
