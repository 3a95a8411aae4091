package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/internal/logger"
	"inkwell/cmd/web/mediaclient"
	"inkwell/cmd/web/notify"
)

// 첨부 HTML 파일 업로드 상한. 본문 파일이 이보다 큰 경우는 없다고 본다.
const maxUploadBytes = 8 << 20

// UploadHandler godoc
// @Summary      Upload an attached content file
// @Description  Stores the file on the external media host and returns its hosted URL
// @Tags         uploads
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Param        file  formData  file  true  "HTML content file"
// @Produce      json
// @Success      200  {object}  dto.UploadResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /admin/uploads [post]
func UploadHandler(media *mediaclient.Client, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		if media == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads are not configured"})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		if header.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		result, err := media.Upload(c.Request.Context(), file, header.Filename)
		if err != nil {
			logger.Log.Errorf("media upload error: %v", err)
			notifier.Error("Failed to upload file")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload file"})
			return
		}
		notifier.Success("File uploaded successfully")
		c.JSON(http.StatusOK, result)
	}
}
