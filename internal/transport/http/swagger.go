package http

import (
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/tripjournal/trip-wizard-backend/internal/util"
)

// RegisterSwagger serves the Swagger UI under /swagger. The API document is
// docs/swagger.yaml, converted to JSON once on first request.
func RegisterSwagger(e *echo.Echo) {
	var (
		once    sync.Once
		doc     []byte
		loadErr error
	)

	e.GET("/swagger/doc.json", func(c echo.Context) error {
		once.Do(func() {
			var data []byte
			data, loadErr = os.ReadFile(filepath.Join("docs", "swagger.yaml"))
			if loadErr != nil {
				return
			}
			doc, loadErr = yaml.YAMLToJSON(data)
		})
		if loadErr != nil {
			c.Logger().Errorf("load swagger document: %v", loadErr)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger document"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
