package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SupremoBarbershop/booking-api/internal/httperr"
	"github.com/SupremoBarbershop/booking-api/internal/httpresp"
	"github.com/SupremoBarbershop/booking-api/internal/models"
	"github.com/SupremoBarbershop/booking-api/internal/storage"
)

// maxUploadBytes bounds custom haircut picture uploads.
const maxUploadBytes = 8 << 20

type CustomHaircutHandler struct {
	db       *gorm.DB
	pictures *storage.PictureStore
	log      *zap.Logger
}

func NewCustomHaircutHandler(
	db *gorm.DB,
	pictures *storage.PictureStore,
	log *zap.Logger,
) *CustomHaircutHandler {
	return &CustomHaircutHandler{
		db:       db,
		pictures: pictures,
		log:      log,
	}
}

// Create accepts a multipart form: name, description and an optional
// picture. Pictures are normalized to WebP and pushed to object
// storage; the row keeps only the public URL.
func (h *CustomHaircutHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		httperr.BadRequest(c, "missing_name", "name is required.")
		return
	}
	description := c.PostForm("description")

	var pictureURL string

	file, err := c.FormFile("picture")
	if err == nil {
		if !h.pictures.Enabled() {
			httperr.BadRequest(c, "uploads_disabled", "Picture uploads are not enabled.")
			return
		}
		if file.Size > maxUploadBytes {
			httperr.BadRequest(c, "picture_too_large", "Picture exceeds the upload limit.")
			return
		}

		src, err := file.Open()
		if err != nil {
			httperr.Internal(c, "upload_failed", "Failed to read the uploaded picture.")
			return
		}
		defer src.Close()

		key := fmt.Sprintf("custom-haircuts/%s-%s",
			time.Now().Format("20060102"), uuid.NewString(),
		)

		pictureURL, err = h.pictures.UploadPicture(c.Request.Context(), key, src)
		if err != nil {
			h.log.Error("picture upload failed", zap.Error(err))
			httperr.Internal(c, "upload_failed", "Failed to store the uploaded picture.")
			return
		}
	}

	haircut := models.CustomHaircut{
		Name:        name,
		Description: description,
		PictureURL:  pictureURL,
	}

	if err := h.db.Create(&haircut).Error; err != nil {
		httperr.Internal(c, "failed_to_create_haircut", "Failed to save the custom haircut.")
		return
	}

	c.JSON(201, haircut)
}

func (h *CustomHaircutHandler) List(c *gin.Context) {
	var haircuts []models.CustomHaircut
	if err := h.db.Order("id ASC").Find(&haircuts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_haircuts", "Failed to list custom haircuts.")
		return
	}

	httpresp.List(c, haircuts)
}
