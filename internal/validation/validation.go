package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

// Validate runs the payload through a compiled schema and flattens key
// errors into one user-facing message ("path: problem; path: problem").
func Validate(ctx context.Context, schema *jsonschema.Schema, payload []byte) error {
	keyErrs, err := schema.ValidateBytes(ctx, payload)
	if err != nil {
		return errors.New("Invalid request body")
	}
	if len(keyErrs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(keyErrs))
	for _, ke := range keyErrs {
		path := strings.TrimPrefix(ke.PropertyPath, "/")
		if path == "" {
			path = "body"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", path, ke.Message))
	}
	return errors.New(strings.Join(parts, "; "))
}

func mustCompile(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(fmt.Sprintf("invalid schema: %v", err))
	}
	return rs
}
