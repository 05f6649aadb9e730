package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// StorageService talks to Supabase-compatible object storage over its REST API.
type StorageService struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client
}

var storageService *StorageService

// InitStorageService initializes the object storage client from the environment
func InitStorageService() {
	baseURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_SERVICE_KEY")
	bucket := os.Getenv("SUPABASE_STORAGE_BUCKET")

	if baseURL == "" || apiKey == "" {
		log.Println("WARNING: SUPABASE_URL or SUPABASE_SERVICE_KEY not set. Storage service will not be available.")
		return
	}

	if bucket == "" {
		bucket = "gallery"
	}

	storageService = &StorageService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}

	log.Printf("Storage service initialized for bucket %q", bucket)
}

// GetStorageService returns the singleton storage service instance
func GetStorageService() *StorageService {
	return storageService
}

// Upload stores an object and returns its public URL
func (s *StorageService) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	s.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("storage upload: %s", storageError(resp))
	}

	return s.PublicURL(path), nil
}

// Remove deletes an object. Callers treat failures as best-effort.
func (s *StorageService) Remove(ctx context.Context, path string) error {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, s.bucket)

	body, _ := json.Marshal(map[string][]string{
		"prefixes": {path},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage delete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("storage delete: %s", storageError(resp))
	}

	return nil
}

// PublicURL returns the public URL for an object path
func (s *StorageService) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

func (s *StorageService) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}

func storageError(resp *http.Response) string {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
