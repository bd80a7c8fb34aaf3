package asset

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"billiar/internal/pkg/config"
	"billiar/internal/pkg/errs"
	"billiar/internal/usecase/shared"
)

// HTTPStore talks to the external image service that hosts payment
// receipts and refund QR images.
type HTTPStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPStore(cfg config.AssetsConfig) *HTTPStore {
	return &HTTPStore{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type uploadRequest struct {
	File   string `json:"file"`
	Folder string `json:"folder"`
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

func (s *HTTPStore) Upload(ctx context.Context, dataURI, folder string) (shared.Asset, error) {
	body, err := json.Marshal(uploadRequest{File: dataURI, Folder: folder})
	if err != nil {
		return shared.Asset{}, errs.Wrap(err, "failed to encode upload request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", bytes.NewReader(body))
	if err != nil {
		return shared.Asset{}, errs.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return shared.Asset{}, errs.Wrap(err, "asset upload failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return shared.Asset{}, errs.Wrapf(errs.New("asset service error"), "status %d: %s", resp.StatusCode, snippet)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return shared.Asset{}, errs.Wrap(err, "failed to decode upload response")
	}

	return shared.Asset{URL: out.SecureURL, AssetID: out.PublicID}, nil
}

func (s *HTTPStore) Delete(ctx context.Context, assetID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/assets/"+assetID, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build delete request")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "asset delete failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return errs.Wrapf(errs.New("asset service error"), "status %d", resp.StatusCode)
	}
	return nil
}
