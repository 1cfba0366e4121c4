package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"nexkart-backend/internal/apperr"
	"nexkart-backend/internal/uploader"
)

const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

func readImageFile(file *multipart.FileHeader) ([]byte, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return nil, apperr.Validation("image file extension is required")
	}
	if _, ok := allowedImageExtensions[extension]; !ok {
		return nil, apperr.Validation("unsupported image type: %s", extension)
	}
	if file.Size > maxImageSize {
		return nil, apperr.Validation("image file too large (max 5MB)")
	}

	in, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", file.Filename, err)
	}
	defer in.Close()

	return io.ReadAll(in)
}

// uploadImage pushes one multipart file to the blob store under
// {folder}/{uuid}-{timestamp}{ext} and returns its public URL.
func uploadImage(ctx context.Context, uploads uploader.Uploader, folder string, file *multipart.FileHeader) (string, error) {
	data, err := readImageFile(file)
	if err != nil {
		return "", err
	}
	key := uploader.ObjectKey(folder, file.Filename)
	return uploads.Upload(ctx, key, data)
}
