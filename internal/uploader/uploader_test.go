package uploader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nexkart-backend/internal/apperr"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("products", "Photo.JPG")
	if !strings.HasPrefix(key, "products/") {
		t.Fatalf("expected key under products/, got %s", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected lowercased .jpg extension, got %s", key)
	}

	other := ObjectKey("products", "Photo.JPG")
	if key == other {
		t.Fatal("expected distinct keys for repeated uploads of the same filename")
	}
}

func TestBunnyUpload(t *testing.T) {
	var gotKey, gotAccessKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		gotKey = strings.TrimPrefix(r.URL.Path, "/zone/")
		gotAccessKey = r.Header.Get("AccessKey")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewBunny(srv.URL+"/zone", "secret-key", "https://cdn.example.net", time.Second)
	url, err := client.Upload(context.Background(), "posters/banner.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "https://cdn.example.net/posters/banner.png" {
		t.Fatalf("unexpected public URL: %s", url)
	}
	if gotKey != "posters/banner.png" {
		t.Fatalf("unexpected storage key: %s", gotKey)
	}
	if gotAccessKey != "secret-key" {
		t.Fatalf("unexpected AccessKey header: %s", gotAccessKey)
	}
}

func TestBunnyUploadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewBunny(srv.URL+"/zone", "wrong-key", "https://cdn.example.net", time.Second)
	_, err := client.Upload(context.Background(), "posters/banner.png", []byte("png-bytes"))
	if err == nil {
		t.Fatal("expected error on rejected upload")
	}
	if apperr.KindOf(err) != apperr.KindUpload {
		t.Fatalf("expected upload error kind, got %v", err)
	}
}

func TestCloudinaryUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart parse failed: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "unsigned-preset" {
			t.Errorf("unexpected upload_preset: %s", got)
		}
		if got := r.FormValue("public_id"); got != "products/item" {
			t.Errorf("unexpected public_id: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.example/products/item.png"}`))
	}))
	defer srv.Close()

	client := NewCloudinary("demo", "unsigned-preset", time.Second)
	client.uploadURL = srv.URL

	url, err := client.Upload(context.Background(), "products/item.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "https://res.cloudinary.example/products/item.png" {
		t.Fatalf("unexpected secure URL: %s", url)
	}
}

func TestCloudinaryUploadMissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewCloudinary("demo", "unsigned-preset", time.Second)
	client.uploadURL = srv.URL

	if _, err := client.Upload(context.Background(), "products/item.png", nil); err == nil {
		t.Fatal("expected error when response lacks secure_url")
	}
}
