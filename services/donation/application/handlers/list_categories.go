package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/errhttp"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	appsvcs "github.com/Lslreddy/surplus-to-success/services/donation/application/services"
)

// CategoryResponse is one entry of the food category directory.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"        example:"Prepared meals"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
} // @name CategoryResponse

// CategoryListResponse wraps the full category directory.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
} // @name CategoryListResponse

// ListCategoriesHandler handles GET /categories requests.
type ListCategoriesHandler struct {
	svc *appsvcs.Services
}

func NewListCategoriesHandler(svc *appsvcs.Services) *ListCategoriesHandler {
	return &ListCategoriesHandler{svc: svc}
}

// Execute returns every food category ordered by name.
//
//	@Summary		List categories
//	@Description	Returns the food category directory
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/categories [get]
func (h *ListCategoriesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   c.CreatedAt,
		})
	}
	httpx.JSON(w, http.StatusOK, CategoryListResponse{Categories: out})
}
