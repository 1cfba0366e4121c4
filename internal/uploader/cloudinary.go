package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"nexkart-backend/internal/apperr"
)

// CloudinaryClient uploads through Cloudinary's unsigned upload endpoint using
// a preconfigured upload preset.
type CloudinaryClient struct {
	uploadURL string
	preset    string
	timeout   time.Duration
	client    *http.Client
}

func NewCloudinary(cloudName, preset string, timeout time.Duration) *CloudinaryClient {
	return &CloudinaryClient{
		uploadURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		preset:    preset,
		timeout:   timeout,
		client:    &http.Client{},
	}
}

func (c *CloudinaryClient) Upload(ctx context.Context, key string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return "", apperr.Upload("cloudinary request build failed", err)
	}
	// Cloudinary derives the extension itself; the public id is the key
	// without it.
	publicID := key
	if dot := strings.LastIndex(key, "."); dot > strings.LastIndex(key, "/") {
		publicID = key[:dot]
	}
	if err := writer.WriteField("public_id", publicID); err != nil {
		return "", apperr.Upload("cloudinary request build failed", err)
	}

	part, err := writer.CreateFormFile("file", key)
	if err != nil {
		return "", apperr.Upload("cloudinary request build failed", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", apperr.Upload("cloudinary request build failed", err)
	}
	if err := writer.Close(); err != nil {
		return "", apperr.Upload("cloudinary request build failed", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return "", apperr.Upload("cloudinary upload request failed", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperr.Upload("cloudinary upload failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperr.Upload(fmt.Sprintf("cloudinary upload failed with status %d", resp.StatusCode), nil)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperr.Upload("cloudinary response decode failed", err)
	}
	if result.SecureURL == "" {
		return "", apperr.Upload("cloudinary response missing secure_url", nil)
	}
	return result.SecureURL, nil
}
