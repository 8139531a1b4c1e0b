// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/flightline-dev/flightline/internal/base"
	"github.com/flightline-dev/flightline/internal/http_server/controller"
	mid "github.com/flightline-dev/flightline/internal/http_server/middleware"
	impl "github.com/flightline-dev/flightline/internal/http_server/service"
	"github.com/flightline-dev/flightline/internal/http_server/service/store"
	. "github.com/flightline-dev/flightline/internal/interfaces"
	"github.com/flightline-dev/flightline/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	slogecho "github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func newJwtConfig(accessSecret string) echojwt.Config {
	return echojwt.Config{
		SigningKey:    []byte(accessSecret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: jwtErrorHandler,
	}
}

func jwtErrorHandler(c echo.Context, err error) error {
	var data *service.ApiResponse[any]
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		data = service.NewApiResponse[any](&service.ErrTokenExpired, service.Unsatisfied, nil)
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenSignatureInvalid):
		data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
	case errors.Is(err, echojwt.ErrJWTMissing):
		data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
	case errors.Is(err, echojwt.ErrJWTInvalid):
		data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
	default:
		data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
	}
	return data.Response(c)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	requestLogger := slog.Default()
	if appLogger, ok := applicationContent.Logger().(*base.Logger); ok {
		requestLogger = appLogger.Slog()
	}
	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(requestLogger, loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := newJwtConfig(httpConfig.JWT.AccessSecret)

	operations := applicationContent.Operations()
	userOperation := operations.UserOperation()
	flightOperation := operations.FlightOperation()
	aircraftOperation := operations.AircraftOperation()
	imageOperation := operations.ImageOperation()
	tokenOperation := operations.TokenOperation()

	jwtMiddleware := echojwt.WithConfig(jwtConfig)
	guardMiddleware := mid.TokenGuardMiddleware(logger, userOperation, tokenOperation)
	authenticated := []echo.MiddlewareFunc{jwtMiddleware, guardMiddleware}

	impl.InitValidator(httpConfig.Limits)

	var storeService service.StoreServiceInterface
	storeService = store.NewLocalStoreService(logger, httpConfig.Store)
	switch httpConfig.Store.StoreType {
	case 1:
		storeService = store.NewALiYunOssStoreService(logger, httpConfig.Store, storeService)
	case 2:
		storeService = store.NewTencentCosStoreService(logger, httpConfig.Store, storeService)
	}

	authService := impl.NewAuthService(logger, httpConfig, userOperation, tokenOperation)
	userService := impl.NewUserService(logger, httpConfig, userOperation, flightOperation, imageOperation, storeService)
	flightService := impl.NewFlightService(logger, httpConfig, flightOperation, aircraftOperation)
	aircraftService := impl.NewAircraftService(logger, httpConfig, aircraftOperation)
	imageService := impl.NewImageService(logger, httpConfig, imageOperation, flightOperation, storeService)

	authController := controller.NewAuthController(logger, authService)
	userController := controller.NewUserController(logger, userService)
	flightController := controller.NewFlightController(logger, flightService)
	aircraftController := controller.NewAircraftController(logger, aircraftService)
	imageController := controller.NewImageController(logger, imageService)

	apiGroup := e.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/login", authController.UserLogin)
	authGroup.POST("/logout", authController.UserLogout, authenticated...)
	authGroup.POST("/refresh", authController.TokenRefresh)

	apiGroup.GET("/profile", userController.GetCurrentUserProfile, authenticated...)

	userGroup := apiGroup.Group("/users", authenticated...)
	userGroup.POST("", userController.CreateUser)
	userGroup.GET("", userController.GetUsers)
	userGroup.GET("/me", userController.GetCurrentUserProfile)
	userGroup.PUT("/me", userController.EditCurrentProfile)
	userGroup.GET("/:uid", userController.GetUserProfile)
	userGroup.PATCH("/:uid", userController.EditProfile)
	userGroup.PUT("/:uid/password", userController.EditPassword)
	userGroup.DELETE("/:uid", userController.DeleteUser)

	flightGroup := apiGroup.Group("/flights", authenticated...)
	flightGroup.POST("", flightController.CreateFlight)
	flightGroup.GET("", flightController.GetFlights)
	flightGroup.GET("/all", flightController.GetAllFlights)
	flightGroup.GET("/totals", flightController.GetTotals)
	flightGroup.GET("/by-date", flightController.GetFlightsByDate)
	flightGroup.GET("/:id", flightController.GetFlight)
	flightGroup.PUT("/:id", flightController.ReplaceFlight)
	flightGroup.PATCH("/:id", flightController.EditFlight)
	flightGroup.DELETE("/:id", flightController.DeleteFlight)

	aircraftGroup := apiGroup.Group("/aircraft", authenticated...)
	aircraftGroup.POST("", aircraftController.CreateAircraft)
	aircraftGroup.GET("", aircraftController.GetAircraftList)
	aircraftGroup.GET("/all", aircraftController.GetAllAircraft)
	aircraftGroup.GET("/:id", aircraftController.GetAircraft)
	aircraftGroup.PATCH("/:id", aircraftController.EditAircraft)
	aircraftGroup.DELETE("/:id", aircraftController.DeleteAircraft)

	imageGroup := apiGroup.Group("/img", authenticated...)
	imageGroup.POST("", imageController.UploadImage)
	imageGroup.GET("/:id", imageController.GetImage)
	imageGroup.DELETE("/:id", imageController.DeleteImage)

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
