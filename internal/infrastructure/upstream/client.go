package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"rackline/internal/domain/entity"
	"rackline/pkg/errors"
)

// Client talks to the upstream commerce/CMS API that is authoritative
// for catalog, orders and site content.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Internal("Failed to build upstream request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Upstream("Upstream request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NotFound("Upstream resource", nil)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Unauthorized("Upstream rejected credentials", nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.Upstream(fmt.Sprintf("Upstream returned %d", resp.StatusCode), fmt.Errorf("%s", data))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Upstream("Failed to decode upstream response", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Internal("Failed to encode upstream request", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

// FetchContent loads the full content document. The ts query parameter
// defeats any intermediate caching, matching how the storefront always
// asks for fresh content at startup.
func (c *Client) FetchContent(ctx context.Context) (entity.ContentPatch, error) {
	var patch entity.ContentPatch
	path := fmt.Sprintf("/content?ts=%d", time.Now().UnixMilli())
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &patch); err != nil {
		return nil, err
	}
	return patch, nil
}

// SaveSection pushes one top-level content section.
func (c *Client) SaveSection(ctx context.Context, section string, payload interface{}) error {
	return c.doJSON(ctx, http.MethodPost, "/"+section, payload, nil)
}

type paginatedProducts struct {
	Items []entity.Product `json:"items"`
	Total int64            `json:"total"`
}

func (c *Client) FetchProducts(ctx context.Context, limit, offset int) ([]entity.Product, int64, error) {
	var out paginatedProducts
	path := fmt.Sprintf("/products/paginated?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Items, out.Total, nil
}

func (c *Client) FetchProduct(ctx context.Context, idOrSKU string) (*entity.Product, error) {
	var out entity.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+url.PathEscape(idOrSKU), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, product *entity.Product) error {
	return c.doJSON(ctx, http.MethodPost, "/products", product, product)
}

func (c *Client) UpdateProduct(ctx context.Context, product entity.Product) error {
	return c.doJSON(ctx, http.MethodPatch, "/products/"+url.PathEscape(product.ID), product, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

type BulkResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (c *Client) BulkUpsertProducts(ctx context.Context, products []entity.Product) (*BulkResult, error) {
	var out BulkResult
	if err := c.doJSON(ctx, http.MethodPost, "/products/bulk", products, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchOrders(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, order *entity.Order) error {
	return c.doJSON(ctx, http.MethodPost, "/orders", order, order)
}

func (c *Client) UpdateOrder(ctx context.Context, order entity.Order) error {
	return c.doJSON(ctx, http.MethodPatch, "/orders/"+url.PathEscape(order.ID), order, nil)
}

type syncResult struct {
	RecordID string `json:"recordId"`
}

func (c *Client) SyncOrderAirtable(ctx context.Context, id string) (string, error) {
	var out syncResult
	if err := c.doJSON(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/sync-airtable", nil, &out); err != nil {
		return "", err
	}
	return out.RecordID, nil
}

func (c *Client) SyncOrderXero(ctx context.Context, id string) (string, error) {
	var out syncResult
	if err := c.doJSON(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/sync-xero", nil, &out); err != nil {
		return "", err
	}
	return out.RecordID, nil
}

func (c *Client) FetchSubmissions(ctx context.Context) ([]entity.Submission, error) {
	var out []entity.Submission
	if err := c.doJSON(ctx, http.MethodGet, "/quotes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	return c.doJSON(ctx, http.MethodPost, "/quotes", submission, submission)
}

func (c *Client) UpdateSubmission(ctx context.Context, submission entity.Submission) error {
	return c.doJSON(ctx, http.MethodPatch, "/quotes/"+url.PathEscape(submission.ID), submission, nil)
}

type trackRequest struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
}

type orderTrackResponse struct {
	Found bool          `json:"found"`
	Order *entity.Order `json:"order,omitempty"`
}

type quoteTrackResponse struct {
	Found      bool               `json:"found"`
	Submission *entity.Submission `json:"submission,omitempty"`
}

// TrackOrder looks up an order by reference+email. A miss is not an
// error; the tracking flow tries quotes next.
func (c *Client) TrackOrder(ctx context.Context, reference, email string) (*entity.Order, bool, error) {
	var out orderTrackResponse
	if err := c.doJSON(ctx, http.MethodPost, "/orders/track", trackRequest{Reference: reference, Email: email}, &out); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !out.Found || out.Order == nil {
		return nil, false, nil
	}
	return out.Order, true, nil
}

func (c *Client) TrackQuote(ctx context.Context, reference, email string) (*entity.Submission, bool, error) {
	var out quoteTrackResponse
	if err := c.doJSON(ctx, http.MethodPost, "/quotes/track", trackRequest{Reference: reference, Email: email}, &out); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !out.Found || out.Submission == nil {
		return nil, false, nil
	}
	return out.Submission, true, nil
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadFile forwards a CMS asset upload and returns the public URL.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Internal("Failed to build upload request", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Internal("Failed to read upload", err)
	}
	if err := w.Close(); err != nil {
		return "", errors.Internal("Failed to finish upload request", err)
	}

	var out uploadResponse
	if err := c.do(ctx, http.MethodPost, "/cms/upload", &buf, w.FormDataContentType(), &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ImportRedirects forwards a redirects CSV and returns the imported and
// skipped row counts.
func (c *Client) ImportRedirects(ctx context.Context, filename string, r io.Reader) (*BulkResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Internal("Failed to build import request", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, errors.Internal("Failed to read import file", err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Internal("Failed to finish import request", err)
	}

	var out BulkResult
	if err := c.do(ctx, http.MethodPost, "/cms/redirects/import", &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
