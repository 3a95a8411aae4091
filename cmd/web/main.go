package main

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"inkwell/cmd/internal/logger"
	"inkwell/cmd/web/auth"
	"inkwell/cmd/web/content"
	"inkwell/cmd/web/contentclient"
	"inkwell/cmd/web/mediaclient"
	"inkwell/cmd/web/notify"
	"inkwell/cmd/web/router"
	"inkwell/cmd/web/services"
	"inkwell/config"
	_ "inkwell/docs" // swag will generate this package
)

// @title           Inkwell Web Gateway
// @version         1.0
// @description     Gateway for browsing, composing and managing blog posts backed by a remote content API
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	timeout := time.Duration(cfg.ContentAPI.TimeoutSeconds) * time.Second
	contentClient := contentclient.New(cfg.ContentAPI.BaseURL, timeout)
	resolver := content.NewResolver(timeout)
	notifier := notify.NewCenter(
		cfg.Notifications.MaxVisible,
		time.Duration(cfg.Notifications.DurationSeconds)*time.Second,
	)

	sessions, err := auth.NewSessionManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	// 미디어 호스트 설정이 없으면 업로드만 비활성화하고 나머지는 정상 기동한다.
	media, err := mediaclient.NewFromEnv()
	if err != nil {
		logger.Log.Warnf("media uploads disabled: %v", err)
		media = nil
	}

	r := router.New(router.Deps{
		ContentClient: contentClient,
		Notifier:      notifier,
		Sessions:      sessions,
		Media:         media,
		Listing:       services.NewListingService(contentClient),
		Posts:         services.NewPostService(contentClient, resolver, notifier, cfg.Server.SiteURL),
		Composer:      services.NewComposerService(contentClient, notifier),
		Admin:         services.NewAdminService(contentClient, sessions, notifier),
		Categories:    cfg.Categories,
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
	}).Handler(r)

	logger.Log.Infof("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
