package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/web/notify"
)

// ListNotificationsHandler godoc
// @Summary      Active notifications
// @Description  Snapshot of currently visible messages in insertion order
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  notify.Message
// @Router       /notifications [get]
func ListNotificationsHandler(center *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, center.Active())
	}
}

// DismissNotificationHandler godoc
// @Summary      Dismiss a notification
// @Description  Removes the message ahead of its auto-dismiss timer
// @Tags         notifications
// @Param        id  path  string  true  "Notification id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /notifications/{id} [delete]
func DismissNotificationHandler(center *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !center.Dismiss(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "dismissed"})
	}
}
