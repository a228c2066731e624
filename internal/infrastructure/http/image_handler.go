package http

import (
	nethttp "net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipehub/backend/internal/ports/outbound"
)

const maxImageSize = 5 << 20 // 5 MiB

var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
}

// ImageHandler accepts recipe image uploads and hands back the stored name.
type ImageHandler struct {
	storage outbound.FileStorage
	logger  *zap.Logger
}

// NewImageHandler builds the handler.
func NewImageHandler(storage outbound.FileStorage, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{storage: storage, logger: logger.Named("image-handler")}
}

func (h *ImageHandler) register(api *gin.RouterGroup, auth gin.HandlerFunc) {
	protected := api.Group("", auth)
	protected.POST("/images", h.upload)
}

func (h *ImageHandler) upload(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "MISSING_IMAGE", Message: "image form field is required"})
		return
	}
	if header.Size > maxImageSize {
		c.JSON(nethttp.StatusRequestEntityTooLarge, errorBody{Code: "IMAGE_TOO_LARGE", Message: "image exceeds the size limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		c.JSON(nethttp.StatusBadRequest, errorBody{Code: "IMAGE_TYPE_NOT_ALLOWED", Message: "unsupported image type"})
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	defer file.Close()

	name := h.storage.GenerateName(header.Filename)
	if err := h.storage.Save(c.Request.Context(), name, file); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(nethttp.StatusCreated, gin.H{"imageName": name})
}
