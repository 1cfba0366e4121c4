package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"nexkart-backend/internal/apperr"
)

// BunnyClient uploads blobs to a bunny.net storage zone with a plain HTTP PUT
// and serves them back through the pull zone.
type BunnyClient struct {
	endpoint   string // https://{storageHost}/{zone}
	accessKey  string
	publicBase string // https://{pullZone}
	timeout    time.Duration
	client     *http.Client
}

func NewBunny(endpoint, accessKey, publicBase string, timeout time.Duration) *BunnyClient {
	return &BunnyClient{
		endpoint:   endpoint,
		accessKey:  accessKey,
		publicBase: publicBase,
		timeout:    timeout,
		client:     &http.Client{},
	}
}

func (b *BunnyClient) Upload(ctx context.Context, key string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.endpoint+"/"+key, bytes.NewReader(data))
	if err != nil {
		return "", apperr.Upload("bunny upload request failed", err)
	}
	req.Header.Set("AccessKey", b.accessKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", apperr.Upload("bunny upload failed", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", apperr.Upload(fmt.Sprintf("bunny upload failed with status %d", resp.StatusCode), nil)
	}

	return b.publicBase + "/" + key, nil
}
