package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// PathToRawSpec returns the embedded document keyed by its path.
func PathToRawSpec(pathToFile string) map[string]func() ([]byte, error) {
	return map[string]func() ([]byte, error){
		pathToFile: func() ([]byte, error) { return rawSpec, nil },
	}
}

// GetSwagger returns the OpenAPI document embedded in this package.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
