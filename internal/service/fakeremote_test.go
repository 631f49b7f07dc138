package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"bbp-finder-be/pkg/openai"
)

// noopLogger keeps service tests quiet.
type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// fakeRemote imitates the vector-store and retrieval endpoints the client
// talks to, recording every mutating call in order so tests can assert
// cascade ordering.
type fakeRemote struct {
	mu     sync.Mutex
	nextID int

	stores     map[string]openai.VectorStore
	storeFiles map[string][]openai.VectorStoreFile
	files      map[string]openai.File

	// polls until an attached file reports completed; <0 means never
	indexAfter int
	// file ids whose indexing ends in failed instead of completed
	failIndexing map[string]bool
	// file ids whose content deletion returns 500
	failDeleteFile map[string]bool
	pollCount      map[string]int

	answer    string
	citations []openai.Annotation

	Calls []string

	srv *httptest.Server
}

func newFakeRemote() *fakeRemote {
	f := &fakeRemote{
		stores:         map[string]openai.VectorStore{},
		storeFiles:     map[string][]openai.VectorStoreFile{},
		files:          map[string]openai.File{},
		failIndexing:   map[string]bool{},
		failDeleteFile: map[string]bool{},
		pollCount:      map[string]int{},
		answer:         `{"Found": "Yes"}`,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /vector_stores", f.createStore)
	mux.HandleFunc("GET /vector_stores", f.listStores)
	mux.HandleFunc("DELETE /vector_stores/{id}", f.deleteStore)
	mux.HandleFunc("GET /vector_stores/{id}/files", f.listStoreFiles)
	mux.HandleFunc("POST /vector_stores/{id}/files", f.attachFile)
	mux.HandleFunc("DELETE /vector_stores/{id}/files/{fileId}", f.detachFile)
	mux.HandleFunc("POST /files", f.uploadFile)
	mux.HandleFunc("GET /files/{id}", f.retrieveFile)
	mux.HandleFunc("DELETE /files/{id}", f.deleteFile)
	mux.HandleFunc("POST /responses", f.createResponse)

	f.srv = httptest.NewServer(mux)
	return f
}

func (f *fakeRemote) Close()      { f.srv.Close() }
func (f *fakeRemote) URL() string { return f.srv.URL }

func (f *fakeRemote) record(format string, args ...interface{}) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *fakeRemote) createStore(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req map[string]string
	json.NewDecoder(r.Body).Decode(&req)
	if req["name"] == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "name must not be empty"}}`))
		return
	}

	f.nextID++
	vs := openai.VectorStore{ID: fmt.Sprintf("vs_%d", f.nextID), Name: req["name"]}
	f.stores[vs.ID] = vs
	f.record("CREATE_STORE %s", vs.ID)
	json.NewEncoder(w).Encode(vs)
}

func (f *fakeRemote) listStores(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := make([]openai.VectorStore, 0, len(f.stores))
	for _, vs := range f.stores {
		data = append(data, vs)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func (f *fakeRemote) deleteStore(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	if _, ok := f.stores[id]; !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "Vector store not found"}}`))
		return
	}
	delete(f.stores, id)
	delete(f.storeFiles, id)
	f.record("DELETE_STORE %s", id)
	json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "deleted": true})
}

func (f *fakeRemote) listStoreFiles(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	refs := f.storeFiles[id]
	out := make([]openai.VectorStoreFile, len(refs))
	for i, ref := range refs {
		out[i] = ref
		out[i].Status = f.statusFor(ref.FileID)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"data": out})
}

// statusFor advances a file's indexing state one poll at a time. Caller
// holds the lock.
func (f *fakeRemote) statusFor(fileID string) string {
	f.pollCount[fileID]++
	if f.indexAfter < 0 || f.pollCount[fileID] <= f.indexAfter {
		return openai.StatusInProgress
	}
	if f.failIndexing[fileID] {
		return openai.StatusFailed
	}
	return openai.StatusCompleted
}

func (f *fakeRemote) attachFile(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	var req map[string]string
	json.NewDecoder(r.Body).Decode(&req)
	ref := openai.VectorStoreFile{
		ID:     req["file_id"],
		FileID: req["file_id"],
		Status: openai.StatusInProgress,
	}
	f.storeFiles[id] = append(f.storeFiles[id], ref)
	f.record("ATTACH %s %s", id, req["file_id"])
	json.NewEncoder(w).Encode(ref)
}

func (f *fakeRemote) detachFile(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	fileID := r.PathValue("fileId")
	refs := f.storeFiles[id]
	kept := refs[:0]
	for _, ref := range refs {
		if ref.FileID != fileID {
			kept = append(kept, ref)
		}
	}
	f.storeFiles[id] = kept
	f.record("DETACH %s %s", id, fileID)
	json.NewEncoder(w).Encode(map[string]interface{}{"id": fileID, "deleted": true})
}

func (f *fakeRemote) uploadFile(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r.ParseMultipartForm(1 << 20)
	_, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "missing file"}}`))
		return
	}

	f.nextID++
	file := openai.File{ID: fmt.Sprintf("file_%d", f.nextID), Filename: header.Filename}
	f.files[file.ID] = file
	f.record("UPLOAD %s", file.ID)
	json.NewEncoder(w).Encode(file)
}

func (f *fakeRemote) retrieveFile(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, ok := f.files[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"message": "No such file"}}`))
		return
	}
	json.NewEncoder(w).Encode(file)
}

func (f *fakeRemote) deleteFile(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := r.PathValue("id")
	if f.failDeleteFile[id] {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "file deletion failed"}}`))
		return
	}
	delete(f.files, id)
	f.record("DELETE_FILE %s", id)
	json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "deleted": true})
}

func (f *fakeRemote) createResponse(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var req struct {
		Model string `json:"model"`
		Input string `json:"input"`
		Tools []struct {
			Type           string   `json:"type"`
			VectorStoreIDs []string `json:"vector_store_ids"`
		} `json:"tools"`
	}
	json.NewDecoder(r.Body).Decode(&req)
	f.record("RESPONSE %s", req.Model)

	content := map[string]interface{}{
		"type":        "output_text",
		"text":        f.answer,
		"annotations": f.citations,
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id": "resp_1",
		"output": []interface{}{
			map[string]interface{}{
				"type":    "message",
				"content": []interface{}{content},
			},
		},
	})
}

// seedStore places a store with pre-indexed files into the fake without
// going through the API.
func (f *fakeRemote) seedStore(id, name string, fileIDs ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stores[id] = openai.VectorStore{ID: id, Name: name}
	for _, fid := range fileIDs {
		f.files[fid] = openai.File{ID: fid, Filename: fid + ".txt"}
		f.storeFiles[id] = append(f.storeFiles[id], openai.VectorStoreFile{
			ID:     fid,
			FileID: fid,
			Status: openai.StatusCompleted,
		})
		// Seeded files are already past indexing.
		f.pollCount[fid] = 1 << 20
	}
}
