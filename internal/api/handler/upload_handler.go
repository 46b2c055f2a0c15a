package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taxdesk/practice-api/internal/api/metrics"
	"github.com/taxdesk/practice-api/internal/infrastructure/files"
)

// UploadHandler accepts multipart document uploads for tasks.
type UploadHandler struct {
	store *files.Store
	log   zerolog.Logger
}

func NewUploadHandler(store *files.Store, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{store: store, log: log}
}

type uploadResponse struct {
	FileURL      string `json:"fileUrl"`
	OriginalName string `json:"originalName"`
}

// Upload stores the "file" multipart field and returns its URL path.
//
// @Summary      Upload a document
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Document to store"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	fileURL, err := h.store.Save(src)
	if err != nil {
		return err
	}

	metrics.UploadsStoredTotal.Inc()
	h.log.Info().
		Str("user_id", actorID(c)).
		Str("file_url", fileURL).
		Str("original_name", fileHeader.Filename).
		Msg("document stored")

	return c.JSON(http.StatusOK, uploadResponse{
		FileURL:      fileURL,
		OriginalName: fileHeader.Filename,
	})
}
