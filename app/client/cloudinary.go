package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

// Cloudinary posts images to an unsigned upload preset. A failed upload is
// reported to the caller and never retried automatically; users re-submit.
type Cloudinary struct {
	uploadURL  string
	preset     string
	httpClient *http.Client
}

func NewCloudinary(uploadURL, preset string) *Cloudinary {
	return &Cloudinary{
		uploadURL: uploadURL,
		preset:    preset,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type UploadResult struct {
	SecureURL    string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	Format       string `json:"format"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Bytes        int64  `json:"bytes"`
	AssetID      string `json:"asset_id"`
	Version      int64  `json:"version"`
	ResourceType string `json:"resource_type"`
}

type uploadError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Cloudinary) Upload(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody uploadError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error.Message != "" {
			return nil, fmt.Errorf("failed to upload image: %s", errBody.Error.Message)
		}
		return nil, fmt.Errorf("failed to upload image: %s", resp.Status)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("no image URL in upload response")
	}

	return &result, nil
}
