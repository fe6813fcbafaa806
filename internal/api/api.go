package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/api/controller"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/logger"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/store"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/auth"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/catalog"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/ingest"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/ranking"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo

	catalogService *catalog.Service
	rankingService *ranking.Service
	ingestService  *ingest.Service
	authService    *auth.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     viper.GetStringSlice(constants.ViperAllowOriginsKey),
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	svc.catalogService = catalog.NewService(store)
	svc.rankingService = ranking.NewService(store)
	svc.ingestService = ingest.NewService(store)
	svc.authService = auth.NewService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.catalogService, svc.rankingService, svc.ingestService, svc.authService)

	public := api.Group("/public")
	public.GET("/rank/:year", cntrl.GetRanking)
	public.GET("/dimension-scores/:year", cntrl.GetDimensionScores)
	public.GET("/dimensions/:year", cntrl.GetYearDimensions)
	public.GET("/countries", cntrl.GetCountries)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", cntrl.Register)
	authGroup.POST("/login", cntrl.Login)
	authGroup.POST("/forgot-password", cntrl.ForgotPassword)
	authGroup.GET("/validate-reset-token", cntrl.ValidateResetToken)
	authGroup.POST("/reset-password", cntrl.ResetPassword)

	admin := api.Group("/admin", svc.AuthMiddleware)
	admin.POST("/countries", cntrl.AddCountry)
	admin.GET("/countries", cntrl.GetCountries)
	admin.POST("/indicators", cntrl.AddIndicator)
	admin.GET("/indicators", cntrl.GetIndicators)
	admin.POST("/dimensions", cntrl.AddDimension)
	admin.GET("/dimensions", cntrl.GetDimensions)
	admin.POST("/dimension-weights", cntrl.AddDimensionWeight)
	admin.POST("/indicator-weights", cntrl.AddIndicatorWeight)
	admin.POST("/scores", cntrl.AddScore)
	admin.PUT("/scores", cntrl.UpdateScore)
	admin.POST("/rank/generate/:year", cntrl.GenerateRanking)
	admin.POST("/upload/validate", cntrl.ValidateUpload)
	admin.POST("/upload/process", cntrl.ProcessUpload)

	return svc, nil
}
