package http

import (
	"fmt"
	"sync"

	"restaurant/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	registerDocOnce sync.Once
	errRegisterDoc  error
)

// registerDoc publishes the embedded OpenAPI document to swag, which serves
// it as doc.json for the Swagger UI. swag panics on a second registration.
func registerDoc(baseURL string) error {
	registerDocOnce.Do(func() {
		spec, err := servers.GetSwagger()
		if err != nil {
			errRegisterDoc = fmt.Errorf("load openapi document: %w", err)
			return
		}
		spec.Servers = openapi3.Servers{{URL: baseURL}}

		raw, err := spec.MarshalJSON()
		if err != nil {
			errRegisterDoc = fmt.Errorf("encode openapi document: %w", err)
			return
		}

		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})
	return errRegisterDoc
}

// RegisterSwagger serves the Swagger UI under /swagger/.
func RegisterSwagger(e *echo.Echo, baseURL string) error {
	if err := registerDoc(baseURL); err != nil {
		return err
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
