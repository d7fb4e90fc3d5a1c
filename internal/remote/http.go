// Package remote provides the remote document store adapter: an HTTP JSON
// client for the cloud mirror of companies and prices, plus an in-memory
// implementation used by tests.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"billbook/internal/core"

	"github.com/shopspring/decimal"
)

const (
	requestTimeout = 15 * time.Second
	probeTimeout   = 3 * time.Second
)

// Client talks to the remote document store. Collections are addressed as
// {base}/collections/{collection} and documents as
// {base}/collections/{collection}/{docId}; merge writes pass ?merge=true.
// Client also serves as the connectivity oracle: Online probes the store's
// health endpoint and an empty base URL means permanently offline.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Online reports whether the remote store is reachable right now. The
// result is never cached; each caller re-probes.
func (c *Client) Online(ctx context.Context) bool {
	if c.baseURL == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

// companyDoc is the wire shape of companies/{docId}.
type companyDoc struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Description string          `json:"description"`
	Outstanding decimal.Decimal `json:"outstanding"`
	CRNumber    string          `json:"crNumber"`
	VATNumber   string          `json:"vatNumber"`
}

// priceDoc is the wire shape of prices/{docId}.
type priceDoc struct {
	ItemName string          `json:"itemName"`
	Price    decimal.Decimal `json:"price"`
}

func (c *Client) Companies(ctx context.Context) ([]core.Company, error) {
	var docs map[string]companyDoc
	if err := c.do(ctx, http.MethodGet, "/collections/companies", nil, &docs); err != nil {
		return nil, err
	}
	companies := make([]core.Company, 0, len(docs))
	for id, d := range docs {
		companies = append(companies, core.Company{
			DocID:       id,
			Name:        d.Name,
			Phone:       d.Phone,
			Address:     d.Address,
			Description: d.Description,
			Outstanding: d.Outstanding,
			CRNumber:    d.CRNumber,
			VATNumber:   d.VATNumber,
		})
	}
	return companies, nil
}

func (c *Client) SetCompany(ctx context.Context, docID string, fields map[string]any, merge bool) error {
	return c.do(ctx, http.MethodPut, c.docPath("companies", docID, merge), fields, nil)
}

func (c *Client) DeleteCompany(ctx context.Context, docID string) error {
	return c.do(ctx, http.MethodDelete, c.docPath("companies", docID, false), nil, nil)
}

func (c *Client) Prices(ctx context.Context) ([]core.PriceItem, error) {
	var docs map[string]priceDoc
	if err := c.do(ctx, http.MethodGet, "/collections/prices", nil, &docs); err != nil {
		return nil, err
	}
	items := make([]core.PriceItem, 0, len(docs))
	for id, d := range docs {
		items = append(items, core.PriceItem{DocID: id, ItemName: d.ItemName, Price: d.Price})
	}
	return items, nil
}

func (c *Client) SetPrice(ctx context.Context, docID, itemName string, price decimal.Decimal) error {
	body := priceDoc{ItemName: itemName, Price: price}
	return c.do(ctx, http.MethodPut, c.docPath("prices", docID, false), body, nil)
}

func (c *Client) DeletePrice(ctx context.Context, docID string) error {
	return c.do(ctx, http.MethodDelete, c.docPath("prices", docID, false), nil, nil)
}

func (c *Client) docPath(collection, docID string, merge bool) string {
	p := "/collections/" + collection + "/" + url.PathEscape(docID)
	if merge {
		p += "?merge=true"
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.baseURL == "" {
		return core.ErrOffline
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("remote %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote %s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode remote response: %w", err)
		}
	}
	return nil
}

var (
	_ core.RemoteStore  = (*Client)(nil)
	_ core.Connectivity = (*Client)(nil)
)
