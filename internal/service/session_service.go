package service

import (
	"time"

	"bbp-finder-be/internal/dto"
	"bbp-finder-be/internal/pkg/serverutils"
	"bbp-finder-be/internal/repository/memory"
	"bbp-finder-be/pkg/store"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create() (*dto.CreateSessionResponse, error)
	End(session *store.Session)
	GetSettings(session *store.Session) *dto.GetSettingsResponse
	SetCredential(session *store.Session, req *dto.SetCredentialRequest)
	SetModel(session *store.Session, req *dto.SetModelRequest)
}

type sessionService struct {
	sessions *memory.SessionRepository
	ttl      time.Duration
}

func NewSessionService(sessions *memory.SessionRepository, ttl time.Duration) ISessionService {
	return &sessionService{
		sessions: sessions,
		ttl:      ttl,
	}
}

func (s *sessionService) Create() (*dto.CreateSessionResponse, error) {
	session := store.NewSession(uuid.New().String())
	s.sessions.Save(session)

	token, err := serverutils.IssueSessionToken(session.ID, s.ttl)
	if err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Token: token}, nil
}

// End discards the session state, credential included. No in-flight remote
// operation is cancelled; its result is simply dropped.
func (s *sessionService) End(session *store.Session) {
	s.sessions.Delete(session.ID)
}

func (s *sessionService) GetSettings(session *store.Session) *dto.GetSettingsResponse {
	return &dto.GetSettingsResponse{
		Model:         session.Model,
		CredentialSet: session.HasCredential(),
	}
}

func (s *sessionService) SetCredential(session *store.Session, req *dto.SetCredentialRequest) {
	session.APIKey = req.APIKey
	s.sessions.Save(session)
}

func (s *sessionService) SetModel(session *store.Session, req *dto.SetModelRequest) {
	session.Model = req.Model
	s.sessions.Save(session)
}
