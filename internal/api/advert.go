package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/lsrecruit/sourcer/internal/types"
)

// ProcessAdvert uploads a job-advert PDF to the summarization service and
// returns the raw JSON payload plus its decoded fields. The raw bytes are
// returned as well so the caller can schema-check them before trusting the
// decode.
func (c *Client) ProcessAdvert(ctx context.Context, filename string, pdf io.Reader) ([]byte, *types.AdvertFields, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("advert", filename)
	if err != nil {
		return nil, nil, &Error{Endpoint: endpointProcessAdvert, Message: "failed to build upload", Cause: err}
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return nil, nil, &Error{Endpoint: endpointProcessAdvert, Message: "failed to read advert file", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, nil, &Error{Endpoint: endpointProcessAdvert, Message: "failed to finalize upload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointProcessAdvert, &buf)
	if err != nil {
		return nil, nil, &Error{Endpoint: endpointProcessAdvert, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var raw json.RawMessage
	if err := c.send(req, endpointProcessAdvert, &raw); err != nil {
		return nil, nil, err
	}

	var fields types.AdvertFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, &Error{Endpoint: endpointProcessAdvert, Message: "failed to decode advert fields", Cause: err}
	}
	return raw, &fields, nil
}

// CreateBox posts a processed advert into the CRM pipeline identified by
// pipelineKey and returns the server's confirmation message.
func (c *Client) CreateBox(ctx context.Context, pipelineKey string, req *types.CreateBoxRequest) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := endpointPipelines + "/" + pipelineKey + "/boxes"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
