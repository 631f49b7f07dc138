package openai

import (
	"context"
	"net/http"
)

// CreateResponse issues a single retrieval-augmented generation request
// scoped to the given stores via the file_search tool. The answer text is
// relayed verbatim; no local ranking or post-processing happens here.

type responseRequest struct {
	Model string         `json:"model"`
	Input string         `json:"input"`
	Tools []responseTool `json:"tools,omitempty"`
}

type responseTool struct {
	Type           string   `json:"type"`
	VectorStoreIDs []string `json:"vector_store_ids,omitempty"`
}

type Response struct {
	ID     string       `json:"id"`
	Output []OutputItem `json:"output"`
}

type OutputItem struct {
	Type    string        `json:"type"`
	Content []ContentPart `json:"content,omitempty"`
}

type ContentPart struct {
	Type        string       `json:"type"`
	Text        string       `json:"text,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

type Annotation struct {
	Type     string `json:"type"`
	FileID   string `json:"file_id,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Citation points at an uploaded file the answer drew from.
type Citation struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
}

func (c *Client) CreateResponse(ctx context.Context, model, input string, vectorStoreIDs []string) (*Response, error) {
	reqBody := responseRequest{
		Model: model,
		Input: input,
		Tools: []responseTool{
			{Type: "file_search", VectorStoreIDs: vectorStoreIDs},
		},
	}

	var resp Response
	if err := c.doJSON(ctx, http.MethodPost, "/responses", reqBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OutputText concatenates the message output_text parts of the response.
func (r *Response) OutputText() string {
	var text string
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				text += part.Text
			}
		}
	}
	return text
}

// Citations collects the file citations attached to the answer text.
func (r *Response) Citations() []Citation {
	var citations []Citation
	for _, item := range r.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type != "output_text" {
				continue
			}
			for _, ann := range part.Annotations {
				if ann.Type == "file_citation" {
					citations = append(citations, Citation{FileID: ann.FileID, Filename: ann.Filename})
				}
			}
		}
	}
	return citations
}
