package api

import (
	"net/http"

	"github.com/orgmatch/orgmatch/services"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func CreateCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
