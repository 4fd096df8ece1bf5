package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"clearplot/internal/auth"
	"clearplot/internal/config"
	"clearplot/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	listingHandler *handler.ListingHandler,
	enhanceHandler *handler.EnhanceHandler,
	predictHandler *handler.PredictHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/users/:id", userHandler.GetUser)
	api.POST("/enhance-description", enhanceHandler.Enhance)
	api.POST("/predict-price", predictHandler.Predict)

	// Search accepts but does not require a bearer token: a valid one
	// hides the caller's own listings, anything else degrades to the
	// anonymous view.
	api.GET("/properties", listingHandler.Search, OptionalAuth(jwtService))
	api.GET("/properties/:id", listingHandler.Get)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:     []byte(cfg.JWTSecret),
		TokenLookup:    "header:" + echo.HeaderAuthorization,
		SuccessHandler: storeCallerID,
	}))

	secured.POST("/properties", listingHandler.Create)
}

// storeCallerID lifts the user id out of the verified token claims so
// handlers can read a typed uuid instead of raw claims.
func storeCallerID(c echo.Context) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return
	}
	raw, _ := claims["user_id"].(string)
	if id, err := uuid.Parse(raw); err == nil {
		c.Set(handler.ContextCallerID, id)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
