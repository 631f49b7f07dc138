package openai

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
)

// File is an uploaded blob in the remote Files API, identified remotely.
type File struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Bytes    int64  `json:"bytes"`
}

// UploadFile submits content to the Files API with the assistants purpose,
// which is the purpose the file-search tool requires.
func (c *Client) UploadFile(ctx context.Context, filename string, content []byte) (*File, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("purpose", "assistants"); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/files", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var f File
	if err := c.send(req, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) RetrieveFile(ctx context.Context, fileID string) (*File, error) {
	var f File
	if err := c.doJSON(ctx, http.MethodGet, "/files/"+fileID, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/files/"+fileID, nil, nil)
}
