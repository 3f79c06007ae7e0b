package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/entities"
)

const mediaCollection = "media"

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends the file at filePath to the media endpoint and returns the
// reference to the stored asset. Every call creates a new asset.
func (c *Client) Upload(ctx context.Context, filePath string) (entities.Image, error) {
	fileName := filepath.Base(filePath)

	body, contentType, err := multipartFile(filePath, fileName)
	if err != nil {
		return entities.Image{}, &UploadError{File: fileName, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(mediaCollection, ""), body)
	if err != nil {
		return entities.Image{}, &UploadError{File: fileName, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Image{}, &UploadError{File: fileName, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.Image{}, &UploadError{File: fileName, StatusCode: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return entities.Image{}, &UploadError{File: fileName, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if uploaded.URL == "" {
		return entities.Image{}, &UploadError{File: fileName, StatusCode: resp.StatusCode, Err: fmt.Errorf("response has no url")}
	}

	c.logger.Debug("uploaded image", zap.String("file", fileName), zap.String("url", uploaded.URL))
	return entities.Image{URL: uploaded.URL}, nil
}

func multipartFile(filePath, fileName string) (io.Reader, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
