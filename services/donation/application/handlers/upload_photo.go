package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/Lslreddy/surplus-to-success/pkg/auth"
	"github.com/Lslreddy/surplus-to-success/pkg/httpx"
	"github.com/Lslreddy/surplus-to-success/pkg/storage"
)

// maxPhotoSize caps uploads at 5 MiB; phone photos compress well below this.
const maxPhotoSize = 5 << 20

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadPhotoResponse carries the public URL to put in photo_url when
// posting the donation.
type UploadPhotoResponse struct {
	URL string `json:"url" example:"https://photos.example.com/donations/123e4567.jpg"`
} // @name UploadPhotoResponse

// UploadPhotoHandler handles POST /donations/photos requests.
type UploadPhotoHandler struct {
	photos *storage.PhotoStore
}

func NewUploadPhotoHandler(photos *storage.PhotoStore) *UploadPhotoHandler {
	return &UploadPhotoHandler{photos: photos}
}

// Execute stores a donation photo and returns its public URL.
//
//	@Summary		Upload donation photo
//	@Description	Uploads a photo to object storage; pass the returned URL as photo_url when posting
//	@Tags			donations
//	@Accept			mpfd
//	@Produce		json
//	@Param			photo	formData	file	true	"Photo file (jpeg, png, or webp, max 5 MiB)"
//	@Success		201		{object}	UploadPhotoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/donations/photos [post]
func (h *UploadPhotoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)
	file, header, err := r.FormFile("photo")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close() //nolint:errcheck

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedPhotoTypes[contentType]
	if !ok {
		// Fall back to the filename extension when the part has no type.
		ext = strings.ToLower(path.Ext(header.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			httpx.JSONError(w, http.StatusBadRequest, "photo must be jpeg, png, or webp")
			return
		}
	}

	key := fmt.Sprintf("donations/%s/%s%s", actor.ID, uuid.New(), ext)
	url, err := h.photos.Upload(r.Context(), key, contentType, file)
	if err != nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "photo storage unavailable")
		return
	}

	httpx.JSON(w, http.StatusCreated, UploadPhotoResponse{URL: url})
}
