package dto

type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

type CreateStoreResponse struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type GetAllStoresResponse struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type StoreFileResponse struct {
	Id       string `json:"id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
}

// UploadFileResult is one row per uploaded file. Status is always a
// terminal indexing state; a timed-out upload surfaces as an error instead.
type UploadFileResult struct {
	Filename string `json:"filename"`
	FileId   string `json:"file_id"`
	Status   string `json:"status"`
}

type UploadFilesResponse struct {
	Results []UploadFileResult `json:"results"`
}

type DeleteStoreResponse struct {
	DeletedFiles int `json:"deleted_files"`
}
