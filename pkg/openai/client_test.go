package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListVectorStores(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch {
		case r.Method == "POST" && r.URL.Path == "/vector_stores":
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(VectorStore{ID: "vs_1", Name: req["name"]})
		case r.Method == "GET" && r.URL.Path == "/vector_stores":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []VectorStore{{ID: "vs_1", Name: "Bounties"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL)

	vs, err := client.CreateVectorStore(context.Background(), "Bounties")
	require.NoError(t, err)
	assert.Equal(t, "vs_1", vs.ID)
	assert.Equal(t, "Bounties", vs.Name)
	assert.Equal(t, "Bearer sk-test", gotAuth)

	stores, err := client.ListVectorStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Bounties", stores[0].Name)
}

func TestAPIErrorParsing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := NewClient("sk-bad", srv.URL)

	_, err := client.ListVectorStores(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Incorrect API key provided", apiErr.Message)
}

func TestUploadFileMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/files", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "assistants", r.FormValue("purpose"))

		f, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "domains.txt", header.Filename)
		assert.Equal(t, "example.com\n", string(content))

		json.NewEncoder(w).Encode(File{ID: "file_1", Filename: header.Filename, Bytes: int64(len(content))})
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL)

	f, err := client.UploadFile(context.Background(), "domains.txt", []byte("example.com\n"))
	require.NoError(t, err)
	assert.Equal(t, "file_1", f.ID)
	assert.Equal(t, "domains.txt", f.Filename)
}

func TestWaitForIndexingReachesCompleted(t *testing.T) {
	polls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		status := StatusInProgress
		if polls >= 3 {
			status = StatusCompleted
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []VectorStoreFile{{ID: "file_1", Status: status}},
		})
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL)

	result, err := client.WaitForIndexing(context.Background(), "vs_1", "file_1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, IndexCompleted, result)
	assert.GreaterOrEqual(t, polls, 3)
}

func TestWaitForIndexingReportsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []VectorStoreFile{{ID: "file_1", Status: StatusFailed}},
		})
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL)

	result, err := client.WaitForIndexing(context.Background(), "vs_1", "file_1", 5*time.Millisecond, time.Second)
	require.NoError(t, err)
	assert.Equal(t, IndexFailed, result)
}

func TestWaitForIndexingTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Never leaves in_progress.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []VectorStoreFile{{ID: "file_1", Status: StatusInProgress}},
		})
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL)

	result, err := client.WaitForIndexing(context.Background(), "vs_1", "file_1", 5*time.Millisecond, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, IndexTimedOut, result)
}

func TestResponseOutputTextAndCitations(t *testing.T) {
	raw := `{
		"id": "resp_1",
		"output": [
			{"type": "reasoning"},
			{"type": "message", "content": [
				{"type": "output_text", "text": "{\"Found\": \"Yes\"}", "annotations": [
					{"type": "file_citation", "file_id": "file_1", "filename": "domains.txt"}
				]}
			]}
		]
	}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.Equal(t, `{"Found": "Yes"}`, resp.OutputText())

	citations := resp.Citations()
	require.Len(t, citations, 1)
	assert.Equal(t, "file_1", citations[0].FileID)
	assert.Equal(t, "domains.txt", citations[0].Filename)
}
