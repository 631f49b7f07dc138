package service

import (
	"context"

	"bbp-finder-be/internal/config"
	"bbp-finder-be/internal/dto"
	"bbp-finder-be/internal/pkg/apperr"
	"bbp-finder-be/internal/pkg/logger"
	"bbp-finder-be/internal/repository/memory"
	"bbp-finder-be/pkg/openai"
	"bbp-finder-be/pkg/store"
)

// UploadInput is one file taken from the multipart form.
type UploadInput struct {
	Filename string
	Content  []byte
}

type IStoreService interface {
	GetAll(ctx context.Context, session *store.Session) ([]*dto.GetAllStoresResponse, error)
	Create(ctx context.Context, session *store.Session, req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error)
	Activate(session *store.Session, storeID string) error
	ClearActive(session *store.Session)
	Delete(ctx context.Context, session *store.Session, storeID string) (*dto.DeleteStoreResponse, error)
	ListFiles(ctx context.Context, session *store.Session, storeID string) ([]*dto.StoreFileResponse, error)
	Upload(ctx context.Context, session *store.Session, storeID string, files []UploadInput) (*dto.UploadFilesResponse, error)
	DeleteFile(ctx context.Context, session *store.Session, storeID, fileID string) error
}

type storeService struct {
	cfg      config.RemoteConfig
	sessions *memory.SessionRepository
	log      logger.ILogger
}

func NewStoreService(cfg config.RemoteConfig, sessions *memory.SessionRepository, log logger.ILogger) IStoreService {
	return &storeService{
		cfg:      cfg,
		sessions: sessions,
		log:      log,
	}
}

// GetAll refreshes the local id -> name cache from the remote listing. The
// listing is authoritative; nothing is guessed from previous calls. If the
// active store no longer exists remotely, the active flag is dropped.
func (s *storeService) GetAll(ctx context.Context, session *store.Session) ([]*dto.GetAllStoresResponse, error) {
	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return nil, err
	}

	stores, err := client.ListVectorStores(ctx)
	if err != nil {
		return nil, asRemote(err)
	}

	refs := make([]store.StoreRef, 0, len(stores))
	result := make([]*dto.GetAllStoresResponse, 0, len(stores))
	activeSeen := false
	for _, vs := range stores {
		refs = append(refs, store.StoreRef{ID: vs.ID, Name: vs.Name})
		active := vs.ID == session.ActiveStoreID
		activeSeen = activeSeen || active
		result = append(result, &dto.GetAllStoresResponse{
			Id:     vs.ID,
			Name:   vs.Name,
			Active: active,
		})
	}

	session.RememberStores(refs)
	if session.ActiveStoreID != "" && !activeSeen {
		session.ClearActive()
	}
	s.sessions.Save(session)

	return result, nil
}

// Create makes a new remote store and sets it active, replacing any
// previous selection.
func (s *storeService) Create(ctx context.Context, session *store.Session, req *dto.CreateStoreRequest) (*dto.CreateStoreResponse, error) {
	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return nil, err
	}

	vs, err := client.CreateVectorStore(ctx, req.Name)
	if err != nil {
		return nil, asRemote(err)
	}

	session.KnownStores[vs.ID] = vs.Name
	session.SetActive(vs.ID)
	s.sessions.Save(session)

	s.log.Info("store", "Created vector store", map[string]interface{}{"store_id": vs.ID})

	return &dto.CreateStoreResponse{
		Id:     vs.ID,
		Name:   vs.Name,
		Active: true,
	}, nil
}

func (s *storeService) Activate(session *store.Session, storeID string) error {
	if _, known := session.KnownStores[storeID]; !known {
		return apperr.NewValidation("unknown store %s; refresh the store list first", storeID)
	}
	session.SetActive(storeID)
	s.sessions.Save(session)
	return nil
}

func (s *storeService) ClearActive(session *store.Session) {
	session.ClearActive()
	s.sessions.Save(session)
}

// Delete removes every file under the store before the store itself. The
// remote does not cascade, so the ordering here is what prevents orphaned
// files. A failing file deletion halts the cascade with the store intact.
func (s *storeService) Delete(ctx context.Context, session *store.Session, storeID string) (*dto.DeleteStoreResponse, error) {
	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return nil, err
	}

	files, err := client.ListVectorStoreFiles(ctx, storeID)
	if err != nil {
		return nil, asRemote(err)
	}

	deleted := 0
	for _, f := range files {
		fileID := f.FileID
		if fileID == "" {
			fileID = f.ID
		}
		if err := client.DetachFile(ctx, storeID, f.ID); err != nil {
			return nil, haltCascade(err, fileID, "detach")
		}
		if err := client.DeleteFile(ctx, fileID); err != nil {
			return nil, haltCascade(err, fileID, "delete")
		}
		deleted++
	}

	if err := client.DeleteVectorStore(ctx, storeID); err != nil {
		return nil, asRemote(err)
	}

	delete(session.KnownStores, storeID)
	if session.ActiveStoreID == storeID {
		session.ClearActive()
	}
	s.sessions.Save(session)

	s.log.Info("store", "Deleted vector store", map[string]interface{}{
		"store_id":      storeID,
		"deleted_files": deleted,
	})

	return &dto.DeleteStoreResponse{DeletedFiles: deleted}, nil
}

// ListFiles reports the current indexing status per file and resolves
// display filenames through the Files API. A file whose metadata cannot be
// retrieved still shows up, just without a name.
func (s *storeService) ListFiles(ctx context.Context, session *store.Session, storeID string) ([]*dto.StoreFileResponse, error) {
	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return nil, err
	}

	files, err := client.ListVectorStoreFiles(ctx, storeID)
	if err != nil {
		return nil, asRemote(err)
	}

	result := make([]*dto.StoreFileResponse, 0, len(files))
	for _, f := range files {
		fileID := f.FileID
		if fileID == "" {
			fileID = f.ID
		}
		row := &dto.StoreFileResponse{
			Id:     fileID,
			Status: f.Status,
		}
		if meta, err := client.RetrieveFile(ctx, fileID); err == nil {
			row.Filename = meta.Filename
		}
		result = append(result, row)
	}

	return result, nil
}

// Upload pushes each file to the Files API, attaches it to the store, and
// waits for indexing to reach a terminal state. "failed" is reported as a
// row like "completed" is; only the bounded wait elapsing is an error. The
// batch stops at the first failing file so the user sees which one it was.
func (s *storeService) Upload(ctx context.Context, session *store.Session, storeID string, files []UploadInput) (*dto.UploadFilesResponse, error) {
	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperr.NewValidation("no files provided")
	}

	results := make([]dto.UploadFileResult, 0, len(files))
	for _, in := range files {
		row, err := s.uploadOne(ctx, client, storeID, in)
		if err != nil {
			return nil, err
		}
		results = append(results, *row)
	}

	return &dto.UploadFilesResponse{Results: results}, nil
}

func (s *storeService) uploadOne(ctx context.Context, client *openai.Client, storeID string, in UploadInput) (*dto.UploadFileResult, error) {
	created, err := client.UploadFile(ctx, in.Filename, in.Content)
	if err != nil {
		return nil, asRemote(err)
	}

	if err := client.AttachFile(ctx, storeID, created.ID); err != nil {
		return nil, asRemote(err)
	}

	outcome, err := client.WaitForIndexing(ctx, storeID, created.ID, s.cfg.PollInterval, s.cfg.PollTimeout)
	if err != nil {
		return nil, asRemote(err)
	}
	if outcome == openai.IndexTimedOut {
		return nil, apperr.NewTimeout("indexing of %s did not finish within %s", in.Filename, s.cfg.PollTimeout)
	}

	s.log.Info("store", "Uploaded file", map[string]interface{}{
		"store_id": storeID,
		"file_id":  created.ID,
		"status":   string(outcome),
	})

	return &dto.UploadFileResult{
		Filename: in.Filename,
		FileId:   created.ID,
		Status:   string(outcome),
	}, nil
}

// DeleteFile detaches the reference from the store first, then removes the
// underlying content.
func (s *storeService) DeleteFile(ctx context.Context, session *store.Session, storeID, fileID string) error {
	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return err
	}

	if err := client.DetachFile(ctx, storeID, fileID); err != nil {
		return asRemote(err)
	}
	if err := client.DeleteFile(ctx, fileID); err != nil {
		return asRemote(err)
	}
	return nil
}
