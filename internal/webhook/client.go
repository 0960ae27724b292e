package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"go.uber.org/zap"

	"juria/internal/domain"
)

// DefaultFileContentType is used for the binary part when the caller does
// not know the file's type. Uploads are PDFs in practice.
const DefaultFileContentType = "application/pdf"

// Client posts to the backend's webhooks.
//
// Any HTTP-level reply, 2xx or not, resolves to a domain.Response with a nil
// error; an error is returned only when no reply arrived at all. Callers
// inspect Response.OK and Response.Body themselves.
type Client struct {
	base string
	user string
	pass string
	http *http.Client
	log  *zap.Logger
}

// New returns a Client for the backend at base, authenticating every request
// with the given Basic credentials.
func New(base, user, pass string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{base: base, user: user, pass: pass, http: httpClient, log: log}
}

// PostJSON sends payload as a JSON body to path.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (domain.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Response{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return domain.Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

// PostMultipart sends named text fields, plus at most one binary part, as a
// multipart form to path.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, file *domain.FilePart) (domain.Response, error) {
	buf := new(bytes.Buffer)
	form := multipart.NewWriter(buf)
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return domain.Response{}, err
		}
	}
	if file != nil {
		part, err := form.CreatePart(fileHeader(file))
		if err != nil {
			return domain.Response{}, err
		}
		if _, err := part.Write(file.Content); err != nil {
			return domain.Response{}, err
		}
	}
	if err := form.Close(); err != nil {
		return domain.Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return domain.Response{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	return c.do(req)
}

func (c *Client) do(req *http.Request) (domain.Response, error) {
	req.SetBasicAuth(c.user, c.pass)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("webhook request failed", zap.String("path", req.URL.Path), zap.Error(err))
		return domain.Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Response{}, err
	}

	out := domain.Response{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   string(body),
	}
	c.log.Debug("webhook reply",
		zap.String("path", req.URL.Path),
		zap.Int("status", out.Status),
		zap.Bool("ok", out.OK))
	return out, nil
}

func fileHeader(file *domain.FilePart) textproto.MIMEHeader {
	contentType := file.ContentType
	if contentType == "" {
		contentType = DefaultFileContentType
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, file.FieldName, file.FileName))
	h.Set("Content-Type", contentType)
	return h
}

// Compile-time assertion that Client implements domain.WebhookClient.
var _ domain.WebhookClient = (*Client)(nil)
