package handlers

import (
	"errors"
	"net/http"
	"testing"

	"nexkart-backend/internal/apperr"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("bad input"), http.StatusBadRequest},
		{"conflict", apperr.Conflict("still referenced"), http.StatusBadRequest},
		{"not found", apperr.NotFound("missing"), http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("no"), http.StatusUnauthorized},
		{"upload", apperr.Upload("cdn down", nil), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusForError(tc.err); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestParsePaginationParams(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil || page != 0 || limit != 0 {
		t.Fatalf("expected no pagination when params absent, got page=%d limit=%d err=%v", page, limit, err)
	}

	// only one of the pair present means no pagination either
	page, limit, err = parsePaginationParams("2", "")
	if err != nil || page != 0 || limit != 0 {
		t.Fatalf("expected no pagination with partial params, got page=%d limit=%d err=%v", page, limit, err)
	}

	page, limit, err = parsePaginationParams("2", "25")
	if err != nil {
		t.Fatalf("expected valid pagination, got %v", err)
	}
	if page != 2 || limit != 25 {
		t.Fatalf("expected page=2 limit=25, got page=%d limit=%d", page, limit)
	}

	if _, _, err := parsePaginationParams("0", "25"); err == nil {
		t.Fatal("expected error for page below 1")
	}
	if _, _, err := parsePaginationParams("2", "abc"); err == nil {
		t.Fatal("expected error for non-numeric limit")
	}
}
