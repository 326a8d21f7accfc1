package imagecatalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Image is a reference dermoscopy image from the catalog.
type Image struct {
	ID           string
	ThumbnailURL string
}

type imagesResponse struct {
	Results []struct {
		IsicID string `json:"isic_id"`
		Files  struct {
			Thumbnail256 struct {
				URL string `json:"url"`
			} `json:"thumbnail_256"`
		} `json:"files"`
	} `json:"results"`
}

// Client talks to the ISIC archive API and downloads arbitrary files. Every
// call shares one http.Client bounded by the configured timeout.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchImages lists up to limit images. Failures are logged and yield an
// empty result.
func (c *Client) FetchImages(ctx context.Context, limit int) []Image {
	images, err := c.fetchImages(ctx, limit)
	if err != nil {
		c.log.Warnf("Failed to fetch reference images: %+v", err)
		return nil
	}
	c.log.WithField("count", len(images)).Info("Reference images loaded")
	return images
}

func (c *Client) fetchImages(ctx context.Context, limit int) ([]Image, error) {
	url := fmt.Sprintf("%s/images/?limit=%d", c.baseURL, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image catalog returned status %d", resp.StatusCode)
	}

	var body imagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode image catalog: %w", err)
	}

	images := make([]Image, 0, len(body.Results))
	for _, r := range body.Results {
		if r.Files.Thumbnail256.URL == "" {
			continue
		}
		images = append(images, Image{ID: r.IsicID, ThumbnailURL: r.Files.Thumbnail256.URL})
	}
	return images, nil
}

// Download fetches url and returns its body and content type.
func (c *Client) Download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", url, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}
