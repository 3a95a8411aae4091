package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/web/auth"
	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
	"inkwell/cmd/web/services"
)

// AdminLoginHandler godoc
// @Summary      Admin login
// @Description  Exchanges the console password for a short-lived session token
// @Tags         admin
// @Param        body body dto.AdminLoginRequest true "Password"
// @Produce      json
// @Success      200  {object}  dto.AdminSessionDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /admin/login [post]
func AdminLoginHandler(svc *services.AdminService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session, err := svc.Login(req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidPassword) {
				notifier.Error("Invalid password")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
				return
			}
			respondError(c, notifier, err, "Login failed")
			return
		}
		notifier.Success("Welcome back, Admin!")
		c.JSON(http.StatusOK, session)
	}
}

// AdminOverviewHandler godoc
// @Summary      Management overview
// @Description  Every post regardless of visibility, plus remote aggregate stats
// @Tags         admin
// @Security     BearerAuth
// @Param        search    query  string  false  "Title/short-note search"
// @Param        category  query  string  false  "Category or 'all'"
// @Param        status    query  string  false  "all | published | draft | private"
// @Produce      json
// @Success      200  {object}  dto.AdminOverviewDTO
// @Router       /admin/posts [get]
func AdminOverviewHandler(svc *services.AdminService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := svc.Overview(c.Request.Context(), services.AdminFilterInput{
			Search:   c.Query("search"),
			Category: c.DefaultQuery("category", "all"),
			Status:   c.DefaultQuery("status", "all"),
		})
		if err != nil {
			respondError(c, notifier, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, overview)
	}
}

// AdminEditHandler godoc
// @Summary      Edit post
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Post id"
// @Param        body body  dto.ComposerForm true "Updated fields"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/posts/{id} [put]
func AdminEditHandler(svc *services.AdminService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.ComposerForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Edit(c.Request.Context(), c.Param("id"), form); err != nil {
			respondError(c, notifier, err, "Failed to update blog")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog updated successfully"})
	}
}

// AdminPublishHandler godoc
// @Summary      Publish post
// @Description  Server-confirmed publish; the response carries the resulting state transition
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.PublishResultDTO
// @Router       /admin/posts/{id}/publish [post]
func AdminPublishHandler(svc *services.AdminService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Publish(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, notifier, err, "Failed to publish blog")
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// AdminDeleteHandler godoc
// @Summary      Delete post
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Router       /admin/posts/{id} [delete]
func AdminDeleteHandler(svc *services.AdminService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, notifier, err, "Failed to delete blog")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
	}
}
