package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
	"inkwell/cmd/web/services"
)

// SaveDraftHandler godoc
// @Summary      Save draft
// @Description  Validates the form and creates the post with visibility forced to draft
// @Tags         composer
// @Param        body body dto.ComposerForm true "Composer form"
// @Produce      json
// @Success      201  {object}  dto.ComposeResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /compose/draft [post]
func SaveDraftHandler(svc *services.ComposerService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.ComposerForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.SaveDraft(c.Request.Context(), form)
		if err != nil {
			respondError(c, notifier, err, "Failed to save draft")
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// PublishComposeHandler godoc
// @Summary      Publish from composer
// @Description  Validates the form and creates the post with visibility forced to public
// @Tags         composer
// @Param        body body dto.ComposerForm true "Composer form"
// @Produce      json
// @Success      201  {object}  dto.ComposeResultDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /compose/publish [post]
func PublishComposeHandler(svc *services.ComposerService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.ComposerForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.Publish(c.Request.Context(), form)
		if err != nil {
			respondError(c, notifier, err, "Failed to publish blog")
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// ListCategoriesHandler godoc
// @Summary      Available categories
// @Description  The fixed category list offered by the composer dropdown
// @Tags         composer
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func ListCategoriesHandler(categories []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, categories)
	}
}

// PreviewHandler godoc
// @Summary      Preview form content
// @Description  Renders the in-progress form through the detail layout without creating anything
// @Tags         composer
// @Param        body body dto.ComposerForm true "Composer form"
// @Produce      json
// @Success      200  {object}  dto.PreviewDTO
// @Router       /compose/preview [post]
func PreviewHandler(svc *services.ComposerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.ComposerForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, svc.Preview(form))
	}
}
