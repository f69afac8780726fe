package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/oseayemenre/readinglist/internal/errors"
	"github.com/oseayemenre/readinglist/internal/models"
)

func TestRespondWithSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	data := struct {
		Name string
	}{
		Name: "fake_data",
	}

	respondWithSuccess(w, http.StatusOK, data)

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}

	if header := w.Header().Get("Content-Type"); header != "application/json" {
		t.Fatalf("expected application/json, got %s", header)
	}

	var got struct {
		Name string
	}

	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("error unmarshalling response: %v", err)
	}

	if !reflect.DeepEqual(got, data) {
		t.Fatalf("expected %+v, got %+v", data, got)
	}
}

func TestDecodeJson(t *testing.T) {
	expect := struct {
		Name string
	}{
		Name: "fake_data",
	}

	body, err := json.Marshal(&expect)

	if err != nil {
		t.Fatalf("error marshalling body: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", bytes.NewBuffer(body))

	got := struct{ Name string }{}

	if err := decodeJson(req, &got); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(expect, got) {
		t.Fatalf("expected %+v, got %+v", expect, got)
	}
}

func TestValidationErrorUsesJsonNames(t *testing.T) {
	err := validate.Struct(&models.HandleCreateIntervalRequest{Start: 1})

	if err == nil {
		t.Fatal("expected error, got nil")
	}

	msg := validationError(err).Error()

	for _, field := range []string{"bookId is required", "end is required"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("expected %q in %q", field, msg)
		}
	}
}

func TestRespondWithServiceError(t *testing.T) {
	a := &Api{logger: &testLogger{}}

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{name: "should map not found", err: apperrors.NotFound("Book not found"), expectedCode: http.StatusNotFound, expectedMsg: "Book not found"},
		{name: "should map wrapped conflicts", err: fmt.Errorf("op: %w", apperrors.Conflict("Overlapping reading intervals")), expectedCode: http.StatusConflict, expectedMsg: "Overlapping reading intervals"},
		{name: "should hide internal causes", err: apperrors.Internal(errors.New("pq: password authentication failed")), expectedCode: http.StatusInternalServerError, expectedMsg: "internal server error"},
		{name: "should hide untagged errors", err: errors.New("boom"), expectedCode: http.StatusInternalServerError, expectedMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			a.respondWithServiceError(w, tt.err, "test")

			if w.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, w.Code)
			}

			var got models.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}

			if got.Error != tt.expectedMsg {
				t.Fatalf("expected %s, got %s", tt.expectedMsg, got.Error)
			}
		})
	}
}
