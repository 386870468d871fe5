package scryfall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/angelmondragon/cardvault-importer/pkg/config"
	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
)

const collectionPath = "/cards/collection"

// Client talks to the card catalog's batched collection endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(cfg config.ScryfallConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// Lookup sends one batch of identifiers and returns the matched metadata.
// Request order is preserved and duplicates pass through; the response order
// is the service's own and identifiers it does not know are simply absent
// from the result. Any transport error or non-2xx status is fatal to the run.
func (c *Client) Lookup(ctx context.Context, ids []string) ([]CardData, error) {
	identifiers := make([]identifier, 0, len(ids))
	for _, id := range ids {
		identifiers = append(identifiers, identifier{ID: id})
	}

	body, err := json.Marshal(collectionRequest{Identifiers: identifiers})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeEnrichmentFailed, err, "encoding lookup request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+collectionPath, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeEnrichmentFailed, err, "building lookup request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeEnrichmentFailed, err, "sending lookup request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		msg := fmt.Sprintf("lookup returned %s", resp.Status)
		if len(excerpt) > 0 {
			msg = fmt.Sprintf("%s: %s", msg, strings.TrimSpace(string(excerpt)))
		}
		return nil, pkgerrors.New(pkgerrors.CodeEnrichmentFailed, msg)
	}

	var decoded collectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeEnrichmentFailed, err, "decoding lookup response")
	}

	return decoded.Data, nil
}
