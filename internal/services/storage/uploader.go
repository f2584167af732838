package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phambaophuc/product-variations/pkg/utils"
	storage_go "github.com/supabase-community/storage-go"
)

// UploadOriginal mirrors an upload so a worker can fetch it later. Returns the storage key.
func (s *StorageService) UploadOriginal(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if s.sbClient == nil {
		return "", ErrStorageNotConfigured
	}

	key := utils.GenerateStorageKey(OriginalsPrefix, filename)

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	return key, nil
}

// Delete removes file from Supabase Storage
func (s *StorageService) Delete(ctx context.Context, path string) error {
	if s.sbClient == nil {
		return ErrStorageNotConfigured
	}
	_, err := s.sbClient.RemoveFile(s.bucket, []string{path})
	return err
}
