package dto

type QueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type QueryCitationDTO struct {
	FileId   string `json:"file_id"`
	Filename string `json:"filename"`
}

type QueryResponse struct {
	Answer    string             `json:"answer"`
	Citations []QueryCitationDTO `json:"citations,omitempty"`
}
