package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/payment-records/docs"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/swaggo/swag"
)

// APIDocs is the registered Swagger 2 document and its OpenAPI 3
// conversion, both rendered once at startup.
type APIDocs struct {
	swagger []byte
	openapi []byte
}

// LoadAPIDocs reads the swag registered document, converts it to OpenAPI 3
// and validates the result.
func LoadAPIDocs(ctx context.Context) (*APIDocs, error) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(raw), &doc2); err != nil {
		return nil, fmt.Errorf("parse swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert swagger doc: %w", err)
	}

	if err := doc3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi doc: %w", err)
	}

	openapi, err := json.Marshal(doc3)
	if err != nil {
		return nil, fmt.Errorf("encode openapi doc: %w", err)
	}

	return &APIDocs{swagger: []byte(raw), openapi: openapi}, nil
}

func (d *APIDocs) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /swagger.json", serveDoc(d.swagger))
	mux.HandleFunc("GET /openapi.json", serveDoc(d.openapi))
}

func serveDoc(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
