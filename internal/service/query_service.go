package service

import (
	"context"
	"fmt"
	"strings"

	"bbp-finder-be/internal/config"
	"bbp-finder-be/internal/dto"
	"bbp-finder-be/internal/pkg/apperr"
	"bbp-finder-be/internal/pkg/logger"
	"bbp-finder-be/pkg/store"
)

// promptTemplate is the instruction wrapped around the user input. The
// file_search tool grounds the verdict in the active store's documents.
const promptTemplate = "You're assigned a task to determine whether a bug bounty program exists for the given input. " +
	"Use the file_search tool on the provided vector store to verify. " +
	"Respond strictly in a single JSON object only, with no explanations or extra text. " +
	"Fields required: 'Found' (Yes/No), 'Source', 'Rewards' (Yes/No), 'Program Url'. " +
	"Input: %s"

type IQueryService interface {
	Query(ctx context.Context, session *store.Session, req *dto.QueryRequest) (*dto.QueryResponse, error)
}

type queryService struct {
	cfg config.RemoteConfig
	log logger.ILogger
}

func NewQueryService(cfg config.RemoteConfig, log logger.ILogger) IQueryService {
	return &queryService{
		cfg: cfg,
		log: log,
	}
}

// Query relays the remote answer verbatim. All validation happens before
// any remote call; a failing remote call is surfaced unmodified with no
// retry.
func (s *queryService) Query(ctx context.Context, session *store.Session, req *dto.QueryRequest) (*dto.QueryResponse, error) {
	text := strings.TrimSpace(req.Query)
	if text == "" {
		return nil, apperr.NewValidation("query text is empty")
	}
	if session.ActiveStoreID == "" {
		return nil, apperr.NewValidation("no active vector store; create one or set one active first")
	}

	client, err := remoteClient(s.cfg, session)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(promptTemplate, text)
	resp, err := client.CreateResponse(ctx, session.Model, prompt, []string{session.ActiveStoreID})
	if err != nil {
		return nil, asRemote(err)
	}

	answer := resp.OutputText()
	citations := resp.Citations()

	s.log.Info("query", "Answered query", map[string]interface{}{
		"store_id":  session.ActiveStoreID,
		"citations": len(citations),
	})

	result := &dto.QueryResponse{Answer: answer}
	for _, c := range citations {
		result.Citations = append(result.Citations, dto.QueryCitationDTO{
			FileId:   c.FileID,
			Filename: c.Filename,
		})
	}
	return result, nil
}
