package fiber

import (
	"errors"
	"time"

	gofiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"placement-dashboard/middleware"
)

// SetupFiber builds the app with error handling, panic recovery and request
// logging installed.
func SetupFiber(log *zap.Logger) *gofiber.App {
	app := gofiber.New(gofiber.Config{
		AppName:      "Placement Dashboard",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: ErrorHandler,
	})

	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())

	return app
}

// ErrorHandler turns unhandled errors into a JSON body.
func ErrorHandler(c *gofiber.Ctx, err error) error {
	code := gofiber.StatusInternalServerError
	var fe *gofiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(gofiber.Map{"error": err.Error()})
}
