package kit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteEnvelope_StatusCodeStaysFixed(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteEnvelope(rr, http.StatusCreated, "Creado", map[string]any{"id": "x"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("transport status = %d", rr.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != http.StatusOK {
		t.Fatalf("envelope statusCode = %d, want the fixed 200", env.StatusCode)
	}
	if env.Message != "Creado" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(rr, req, http.StatusNotFound, "no encontrado", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "no encontrado" {
		t.Fatalf("error = %q", body.Error)
	}
}
