package http

import (
	"log/slog"
	"net/http"
	"sync"

	"logistics/internal/adapters/in/http/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// NewRouter builds the echo instance: health check, Swagger UI and the
// validated API routes served by server.
func NewRouter(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var swaggerOnce sync.Once

// registerSwaggerDoc publishes the document to the Swagger UI. swag allows a
// single registration per name.
func registerSwaggerDoc(swagger *openapi3.T) error {
	raw, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	})
	return nil
}
