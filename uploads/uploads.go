// Package uploads exposes the upload domain operations. Upload inputs are
// validated before dispatch; an invalid upload never reaches the backend.
package uploads

import "github.com/goliatone/go-gateway/core"

// File is the public stored file shape.
type File struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// FileList is the payload for paginated file listings.
type FileList struct {
	Files      []File               `json:"files"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type UploadFileInput struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

type GetFileInput struct {
	FileID string `json:"fileId"`
}

type ListFilesInput struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

type DeleteFileInput struct {
	FileID string `json:"fileId"`
}

type wireFile struct {
	ID          string          `json:"id"`
	FileName    string          `json:"file_name"`
	ContentType string          `json:"content_type"`
	Size        int64           `json:"size"`
	URL         string          `json:"url"`
	CreatedAt   *core.Timestamp `json:"created_at,omitempty"`
}

func (w wireFile) toPublic() File {
	return File{
		ID:          w.ID,
		FileName:    w.FileName,
		ContentType: w.ContentType,
		Size:        w.Size,
		URL:         w.URL,
		CreatedAt:   w.CreatedAt.RFC3339(),
	}
}

type uploadFileRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type fileRequest struct {
	FileID string `json:"file_id"`
}

type listFilesRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type fileResponse struct {
	core.BackendStatus
	File *wireFile `json:"file"`
}

type fileListResponse struct {
	core.BackendStatus
	Files      []wireFile              `json:"files"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type ackResponse struct {
	core.BackendStatus
}
