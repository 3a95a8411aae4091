package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inkwell/cmd/web/auth"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/handlers"
	"inkwell/cmd/web/mediaclient"
	"inkwell/cmd/web/middleware"
	"inkwell/cmd/web/notify"
	"inkwell/cmd/web/services"
	_ "inkwell/docs"
)

// Deps 는 라우터가 묶는 공유 컴포넌트들이다. 전부 main 에서 한 번 생성한다.
type Deps struct {
	ContentClient *contentclient.Client
	Notifier      *notify.Center
	Sessions      *auth.SessionManager
	Media         *mediaclient.Client // nil 이면 업로드 라우트는 503
	Listing       *services.ListingService
	Posts         *services.PostService
	Composer      *services.ComposerService
	Admin         *services.AdminService
	Categories    []string
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())
	r.Use(gin.Recovery())

	// Health check: 원격 콘텐츠 API 까지 왕복해야 healthy 로 본다.
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if _, err := deps.ContentClient.GetStats(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "content_service": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.BrowsePostsHandler(deps.Listing, deps.Notifier))
		api.GET("/posts/summary", handlers.ListSummaryHandler(deps.Listing, deps.Notifier))
		api.GET("/posts/:id", handlers.GetPostHandler(deps.Posts, deps.Notifier))
		api.GET("/posts/:id/share-links", handlers.GetShareLinksHandler(deps.Posts, deps.Notifier))
		api.POST("/posts/:id/like", handlers.ToggleLikeHandler(deps.Posts, deps.Notifier))
		api.POST("/posts/:id/comments", handlers.AddCommentHandler(deps.Posts, deps.Notifier))

		api.POST("/compose/draft", handlers.SaveDraftHandler(deps.Composer, deps.Notifier))
		api.POST("/compose/publish", handlers.PublishComposeHandler(deps.Composer, deps.Notifier))
		api.POST("/compose/preview", handlers.PreviewHandler(deps.Composer))
		api.GET("/categories", handlers.ListCategoriesHandler(deps.Categories))

		api.GET("/notifications", handlers.ListNotificationsHandler(deps.Notifier))
		api.DELETE("/notifications/:id", handlers.DismissNotificationHandler(deps.Notifier))

		api.POST("/admin/login", handlers.AdminLoginHandler(deps.Admin, deps.Notifier))

		admin := api.Group("/admin", middleware.AdminAuthMiddleware(deps.Sessions))
		{
			admin.GET("/posts", handlers.AdminOverviewHandler(deps.Admin, deps.Notifier))
			admin.PUT("/posts/:id", handlers.AdminEditHandler(deps.Admin, deps.Notifier))
			admin.POST("/posts/:id/publish", handlers.AdminPublishHandler(deps.Admin, deps.Notifier))
			admin.DELETE("/posts/:id", handlers.AdminDeleteHandler(deps.Admin, deps.Notifier))
			admin.POST("/uploads", handlers.UploadHandler(deps.Media, deps.Notifier))
		}
	}

	return r
}
