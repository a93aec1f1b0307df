package rest

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Abdurahmanit/GroupProject/motel-service/internal/adapter/rest/middleware"
	"github.com/Abdurahmanit/GroupProject/motel-service/internal/platform/logger"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface.
type CustomValidator struct {
	validate *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Register wires every route onto the echo instance. The public group needs
// no token; everything under the secured group requires a verified JWT, and
// the admin subtree additionally checks the stored role inside the usecase.
func Register(
	e *echo.Echo,
	jwtSecret string,
	log *logger.Logger,
	motels *MotelHandler,
	photos *PhotoHandler,
	users *UserHandler,
) {
	e.Validator = NewCustomValidator()

	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.Logging(log))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	// Public directory.
	api.GET("/motels", motels.List)
	api.GET("/motels/:id", motels.Get)

	secured := api.Group("", echojwt.WithConfig(middleware.JWTConfig(jwtSecret)))

	secured.POST("/users/sync", users.Sync)
	secured.GET("/users/me", users.Me)

	secured.POST("/motels", motels.Create)
	secured.PATCH("/motels/:id", motels.Update)
	secured.DELETE("/motels/:id", motels.Delete)
	secured.GET("/my/motels", motels.ListMine)

	secured.POST("/motels/:id/photos", photos.Upload)
	secured.DELETE("/motels/:id/photos", photos.Remove)

	admin := secured.Group("/admin")
	admin.GET("/motels", motels.ListAllAdmin)
	admin.PUT("/motels/:id/status", motels.ChangeStatus)
}
