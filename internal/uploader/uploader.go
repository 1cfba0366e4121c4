package uploader

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"nexkart-backend/internal/config"
)

// Uploader pushes a binary blob to the object store and returns its publicly
// resolvable URL.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// New selects the storage backend from configuration.
func New(cfg config.Config) (Uploader, error) {
	switch strings.ToLower(cfg.StorageProvider) {
	case "bunny":
		endpoint := fmt.Sprintf("https://%s/%s", cfg.BunnyStorageHost, cfg.BunnyStorageZone)
		return NewBunny(endpoint, cfg.BunnyAccessKey, cfg.BunnyPullZone, cfg.UploadTimeout), nil
	case "cloudinary":
		return NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset, cfg.UploadTimeout), nil
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.StorageProvider)
	}
}

// ObjectKey builds the destination key {folder}/{uuid}-{timestamp}{ext} from
// the original upload filename.
func ObjectKey(folder, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s-%d%s", folder, uuid.NewString(), time.Now().UnixMilli(), ext)
}
