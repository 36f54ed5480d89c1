package main

import (
	"fmt"
	"net/http"
	"time"

	"gigtax/auth"
	"gigtax/config"
	"gigtax/controllers"
	"gigtax/database"
	"gigtax/repositories"
	"gigtax/services"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"go.uber.org/zap"
)

// RequestLogFilter logs every request after it completes.
func RequestLogFilter(logger *zap.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		startTime := time.Now()

		chain.ProcessFilter(req, resp)

		logger.Info("Request",
			zap.String("remote_addr", req.Request.RemoteAddr),
			zap.String("method", req.Request.Method),
			zap.String("path", req.Request.URL.Path),
			zap.Int("status_code", resp.StatusCode()),
			zap.Duration("latency", time.Since(startTime)),
			zap.String("user_agent", req.Request.UserAgent()),
		)
	}
}

func main() {
	// Initialize configs
	config.InitConfig()

	var logger *zap.Logger
	switch config.AppConfig.LogLevel {
	case "debug":
		logger, _ = zap.NewDevelopment()
	default:
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	auth.SetSigningKey([]byte(config.AppConfig.JwtSecret))

	db := database.InitDB()

	userRepo := repositories.NewUserRepository(db)
	musicianRepo := repositories.NewMusicianRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	tourRepo := repositories.NewTourRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	authService := services.NewAuthService(userRepo, musicianRepo, tokenRepo)
	gigService := services.NewGigService(gigRepo)
	tourService := services.NewTourService(tourRepo)
	receiptService := services.NewReceiptService(receiptRepo, categoryRepo)
	musicianService := services.NewMusicianService(musicianRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	authFilter := auth.TokenFilter(authService)

	container := controllers.NewContainer(controllers.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Gig:      controllers.NewGigController(gigService),
		Tour:     controllers.NewTourController(tourService),
		Receipt:  controllers.NewReceiptController(receiptService),
		Musician: controllers.NewMusicianController(musicianService),
		Category: controllers.NewCategoryController(categoryService),
	}, authFilter)

	container.Filter(RequestLogFilter(logger))

	// Serve the generated API document
	specConfig := restfulspec.Config{
		WebServices: container.RegisteredWebServices(),
		APIPath:     "/apidocs.json",
	}
	container.Add(restfulspec.NewOpenAPIService(specConfig))

	addr := fmt.Sprintf(":%d", config.AppConfig.HTTPPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      container,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Info("Starting server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
