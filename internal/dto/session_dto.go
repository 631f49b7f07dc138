package dto

type CreateSessionResponse struct {
	Token string `json:"token"`
}

type GetSettingsResponse struct {
	Model string `json:"model"`
	// The credential itself is never echoed back, only whether one is set.
	CredentialSet bool `json:"credential_set"`
}

type SetCredentialRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

type SetModelRequest struct {
	Model string `json:"model" validate:"required"`
}
