package zipcloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"kakunin/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("address not found")
)

// Client talks to the free zipcloud postal-code API. It expects an
// already-normalized 7-digit code.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    "https://zipcloud.ibsnet.co.jp/api/search",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Search(ctx context.Context, zipcode string) (*entity.AddressCache, error) {
	endpoint := c.baseURL + "?" + url.Values{"zipcode": {zipcode}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zipcloud failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var search searchResponse
	err = json.Unmarshal(body, &search)
	if err != nil {
		return nil, err
	}

	if search.Status != 200 {
		return nil, fmt.Errorf("zipcloud rejected the request: %s", search.Message)
	}

	if len(search.Results) == 0 {
		return nil, ErrNotFound
	}
	return search.Results[0].ToDomain(), nil
}
