package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/gocommon/jsonx"
)

var validate = validator.New()

// ReadAndValidateJSON reads a JSON body into the given struct and validates it
func ReadAndValidateJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("error reading request body: %w", err)
	}
	if err := jsonx.Unmarshal(body, v); err != nil {
		return fmt.Errorf("error decoding request: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return err
	}
	return nil
}

// WriteMarshalled writes a JSON response from the passed in value
func WriteMarshalled(w http.ResponseWriter, status int, value any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	serialized, err := jsonx.Marshal(value)
	if err != nil {
		return err
	}

	_, err = w.Write(serialized)
	return err
}
