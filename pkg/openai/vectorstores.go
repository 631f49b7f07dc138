package openai

import (
	"context"
	"net/http"
	"time"
)

// Indexing statuses reported by the remote for a file inside a store.
// "submitted" and "in_progress" are transient; "completed" and "failed"
// (and their legacy spellings) are terminal.
const (
	StatusSubmitted  = "submitted"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// VectorStore is the remote representation of a document collection.
type VectorStore struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VectorStoreFile is a file reference inside a store, with its current
// indexing status. The remote owns the status; we only read it.
type VectorStoreFile struct {
	ID     string `json:"id"`
	FileID string `json:"file_id"`
	Status string `json:"status"`
}

type vectorStoreList struct {
	Data []VectorStore `json:"data"`
}

type vectorStoreFileList struct {
	Data []VectorStoreFile `json:"data"`
}

type createVectorStoreRequest struct {
	Name string `json:"name"`
}

type attachFileRequest struct {
	FileID string `json:"file_id"`
}

func (c *Client) CreateVectorStore(ctx context.Context, name string) (*VectorStore, error) {
	var vs VectorStore
	err := c.doJSON(ctx, http.MethodPost, "/vector_stores", createVectorStoreRequest{Name: name}, &vs)
	if err != nil {
		return nil, err
	}
	return &vs, nil
}

func (c *Client) ListVectorStores(ctx context.Context) ([]VectorStore, error) {
	var listing vectorStoreList
	if err := c.doJSON(ctx, http.MethodGet, "/vector_stores", nil, &listing); err != nil {
		return nil, err
	}
	return listing.Data, nil
}

func (c *Client) DeleteVectorStore(ctx context.Context, storeID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/vector_stores/"+storeID, nil, nil)
}

func (c *Client) ListVectorStoreFiles(ctx context.Context, storeID string) ([]VectorStoreFile, error) {
	var listing vectorStoreFileList
	if err := c.doJSON(ctx, http.MethodGet, "/vector_stores/"+storeID+"/files", nil, &listing); err != nil {
		return nil, err
	}
	return listing.Data, nil
}

// AttachFile adds an already-uploaded file to a store, which starts the
// remote indexing pipeline for it.
func (c *Client) AttachFile(ctx context.Context, storeID, fileID string) error {
	return c.doJSON(ctx, http.MethodPost, "/vector_stores/"+storeID+"/files", attachFileRequest{FileID: fileID}, nil)
}

// DetachFile removes the store association. The underlying file content
// remains until DeleteFile is called.
func (c *Client) DetachFile(ctx context.Context, storeID, fileID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/vector_stores/"+storeID+"/files/"+fileID, nil, nil)
}

// IndexResult is the terminal outcome of waiting for a file to index.
type IndexResult string

const (
	IndexCompleted IndexResult = "completed"
	IndexFailed    IndexResult = "failed"
	IndexTimedOut  IndexResult = "timed_out"
)

// WaitForIndexing polls the file's indexing status at a fixed interval until
// it reaches a terminal state or the deadline elapses. Transient listing
// errors are tolerated and retried on the next tick; the result is never a
// transient status.
func (c *Client) WaitForIndexing(ctx context.Context, storeID, fileID string, interval, timeout time.Duration) (IndexResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		files, err := c.ListVectorStoreFiles(ctx, storeID)
		if err != nil {
			if ctx.Err() != nil {
				return IndexTimedOut, nil
			}
		} else {
			for _, f := range files {
				if f.ID != fileID && f.FileID != fileID {
					continue
				}
				switch f.Status {
				case StatusCompleted, "finished":
					return IndexCompleted, nil
				case StatusFailed, "error", "cancelled":
					return IndexFailed, nil
				}
			}
		}

		select {
		case <-ctx.Done():
			return IndexTimedOut, nil
		case <-ticker.C:
		}
	}
}
