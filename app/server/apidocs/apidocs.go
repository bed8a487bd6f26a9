package apidocs

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"html/template"
	"net/http"
	"path"
	"slices"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Load 解析并校验内嵌的 OpenAPI 文档
func Load(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// Spec 返回 JSON 格式的文档
func Spec(ctx context.Context) ([]byte, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}

type page struct {
	SpecURL string
}

// Doc 在 basePath/apidocs 提供文档页面，在 basePath/apispec.json 提供文档本身，其余请求交给 next
func Doc(basePath string, apiJSON []byte) echo.MiddlewareFunc {
	cfg := &page{
		SpecURL: path.Join(basePath, "apispec.json"),
	}

	docPath := path.Join(basePath, "apidocs")

	buf := bytes.NewBuffer(nil)
	_ = template.Must(template.New("apidoc").Parse(pageTemplate)).Execute(buf, cfg)
	uiHTML := buf.String()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqPath := c.Request().URL.Path
			if !slices.Contains([]string{basePath, docPath, cfg.SpecURL}, reqPath) {
				return next(c)
			}

			switch reqPath {
			case docPath:
				return c.HTML(http.StatusOK, uiHTML)
			case cfg.SpecURL:
				return c.JSONBlob(http.StatusOK, apiJSON)
			default:
				return c.Redirect(http.StatusFound, docPath)
			}
		}
	}
}

const pageTemplate = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Textura API</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>

  <body>
    <script id="api-reference" data-url="{{ .SpecURL }}"></script>

    <script src="https://cdnjs.cloudflare.com/ajax/libs/scalar-api-reference/1.25.99/standalone.min.js" integrity="sha512-ai3lOYZ5efNXMYwnqhz0mnCaImbqfwLE1VCx9Y9nhB3OJX4/uegjIAoQtJHy3SILHp/gS1OlPCIeNFPZT5i2WQ==" crossorigin="anonymous" referrerpolicy="no-referrer"></script>
  </body>
</html>`
