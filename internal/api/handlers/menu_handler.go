package handlers

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/Cheertaboi/coffee-shop-billing/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// MenuLister returns the current menu.
type MenuLister interface {
	List(ctx context.Context) ([]models.MenuItem, error)
}

type MenuItemResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuHandler struct {
	menu MenuLister
	log  *slog.Logger
}

func NewMenuHandler(menu MenuLister, log *slog.Logger) *MenuHandler {
	return &MenuHandler{menu: menu, log: log}
}

// ListMenu handles GET /api/menu
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list menu failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed_list_menu")
		return
	}

	out := make([]MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, MenuItemResponse{ID: it.ID, Name: it.Name, Price: it.Price.InexactFloat64()})
	}
	writeJSON(w, http.StatusOK, out)
}

// Index handles GET / and renders the menu page.
func (h *MenuHandler) Index(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list menu failed", "error", err)
		http.Error(w, "menu unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, items); err != nil {
		h.log.ErrorContext(r.Context(), "render index failed", "error", err)
	}
}
