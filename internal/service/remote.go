package service

import (
	"errors"

	"bbp-finder-be/internal/config"
	"bbp-finder-be/internal/pkg/apperr"
	"bbp-finder-be/pkg/openai"
	"bbp-finder-be/pkg/store"
)

// remoteClient builds a per-call client from the session credential. The
// credential is validated only by the remote: an empty one is refused here,
// anything else fails or succeeds on the first remote call.
func remoteClient(cfg config.RemoteConfig, session *store.Session) (*openai.Client, error) {
	if !session.HasCredential() {
		return nil, apperr.NewValidation("API key is not set; set it in Settings first")
	}
	return openai.NewClient(session.APIKey, cfg.BaseURL), nil
}

// asRemote converts client failures into the RemoteError taxonomy,
// preserving the remote status code for the error middleware.
func asRemote(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperr.NewRemote(apiErr.StatusCode, apiErr.Message)
	}
	return apperr.WrapRemote(err, err.Error())
}

// haltCascade labels a failed file deletion step so the user sees where the
// store deletion stopped. The remote status code is kept intact.
func haltCascade(err error, fileID, action string) error {
	converted := asRemote(err)
	var remoteErr *apperr.RemoteError
	if errors.As(converted, &remoteErr) {
		remoteErr.Message = "cascade halted: could not " + action + " file " + fileID + ": " + remoteErr.Message
		return remoteErr
	}
	return converted
}
