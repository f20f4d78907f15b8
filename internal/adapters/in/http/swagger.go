package http

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerSwagger sync.Once

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

// RegisterSwagger publishes doc, converted to Swagger 2, as the default swag
// document served by echo-swagger. Only the first call registers.
func RegisterSwagger(doc *openapi3.T) error {
	v2, err := openapi2conv.FromV3(doc)
	if err != nil {
		return fmt.Errorf("failed to convert openapi document: %w", err)
	}
	data, err := json.Marshal(v2)
	if err != nil {
		return fmt.Errorf("failed to encode swagger document: %w", err)
	}

	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc(data))
	})
	return nil
}
