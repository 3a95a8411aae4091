package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/cmd/web/dto"
	"inkwell/cmd/web/notify"
	"inkwell/cmd/web/services"
)

// BrowsePostsHandler godoc
// @Summary      Browse posts
// @Description  Full collection with client-style search/category/sort applied in memory
// @Tags         posts
// @Param        search    query  string  false  "Free-text search (title, short note, body, tags)"
// @Param        category  query  string  false  "Category or 'all'"
// @Param        sort      query  string  false  "latest | trending | popular"
// @Produce      json
// @Success      200  {object}  dto.PostListDTO
// @Router       /posts [get]
func BrowsePostsHandler(svc *services.ListingService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.BrowseInput{
			Search:   c.Query("search"),
			Category: c.DefaultQuery("category", "all"),
			Sort:     c.DefaultQuery("sort", services.SortLatest),
		}

		page, err := svc.Browse(c.Request.Context(), in)
		if err != nil {
			respondError(c, notifier, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// ListSummaryHandler godoc
// @Summary      Home counters
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.ListSummaryDTO
// @Router       /posts/summary [get]
func ListSummaryHandler(svc *services.ListingService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		sum, err := svc.Summary(c.Request.Context())
		if err != nil {
			respondError(c, notifier, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, sum)
	}
}

// GetPostHandler godoc
// @Summary      Get post detail
// @Description  Single post with its body resolved through the content-source fallback chain
// @Tags         posts
// @Param        id   path   string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.PostDetailDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetDetail(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, notifier, err, "Failed to fetch blog post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// GetShareLinksHandler godoc
// @Summary      Share links
// @Description  Platform share URLs (Twitter, LinkedIn, Facebook, WhatsApp) for a post
// @Tags         posts
// @Param        id   path   string  true  "Post id"
// @Produce      json
// @Success      200  {object}  dto.ShareLinksDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/share-links [get]
func GetShareLinksHandler(svc *services.PostService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := svc.ShareLinks(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, notifier, err, "Failed to fetch blog post")
			return
		}
		c.JSON(http.StatusOK, links)
	}
}

// ToggleLikeHandler godoc
// @Summary      Toggle like
// @Description  Optimistic: responds with the adjusted state before the remote write lands
// @Tags         posts
// @Param        id   path  string  true  "Post id"
// @Param        body body  dto.LikeToggleRequest true "Current like state held by the view"
// @Produce      json
// @Success      200  {object}  dto.LikeStateDTO
// @Router       /posts/{id}/like [post]
func ToggleLikeHandler(svc *services.PostService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LikeToggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := svc.ToggleLike(c.Request.Context(), services.ToggleLikeInput{
			PostID: c.Param("id"),
			UserID: req.UserID,
			Liked:  req.Liked,
			Likes:  req.Likes,
		})
		c.JSON(http.StatusOK, result)
	}
}

// AddCommentHandler godoc
// @Summary      Add comment
// @Description  Validates, submits, then re-fetches the post for the authoritative comment list
// @Tags         posts
// @Param        id   path  string  true  "Post id"
// @Param        body body  dto.CommentForm true "Comment"
// @Produce      json
// @Success      200  {object}  dto.PostDetailDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/comments [post]
func AddCommentHandler(svc *services.PostService, notifier *notify.Center) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.CommentForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post, err := svc.AddComment(c.Request.Context(), services.AddCommentInput{
			PostID:    c.Param("id"),
			CommentBy: form.CommentBy,
			Comment:   form.Comment,
		})
		if err != nil {
			respondError(c, notifier, err, "Failed to add comment")
			return
		}
		notifier.Success("Comment added successfully")
		c.JSON(http.StatusOK, post)
	}
}
