// Package pharaohs exposes the pharaoh catalog operations. Lookups are
// localized; the language defaults to "en" when omitted. A lookup miss is a
// valid outcome carrying the backend's status and message with no payload.
package pharaohs

import "github.com/goliatone/go-gateway/core"

// Pharaoh is the public pharaoh shape.
type Pharaoh struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Dynasty     string `json:"dynasty"`
	Period      string `json:"period"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Language    string `json:"language"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// PharaohList is the payload for paginated pharaoh listings.
type PharaohList struct {
	Pharaohs   []Pharaoh            `json:"pharaohs"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetPharaohInput struct {
	PharaohID string `json:"pharaohId"`
	Language  string `json:"language,omitempty"`
}

type ListPharaohsInput struct {
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`
}

type SearchPharaohsInput struct {
	Query    string `json:"query"`
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Language string `json:"language,omitempty"`
}

type wirePharaoh struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Dynasty     string          `json:"dynasty"`
	Period      string          `json:"period"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Language    string          `json:"language"`
	CreatedAt   *core.Timestamp `json:"created_at,omitempty"`
}

func (w wirePharaoh) toPublic() Pharaoh {
	return Pharaoh{
		ID:          w.ID,
		Name:        w.Name,
		Dynasty:     w.Dynasty,
		Period:      w.Period,
		Description: w.Description,
		ImageURL:    w.ImageURL,
		Language:    w.Language,
		CreatedAt:   w.CreatedAt.RFC3339(),
	}
}

type getPharaohRequest struct {
	PharaohID string `json:"pharaoh_id"`
	Language  string `json:"language"`
}

type listPharaohsRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Language string `json:"language"`
}

type searchPharaohsRequest struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Language string `json:"language"`
}

type pharaohResponse struct {
	core.BackendStatus
	Pharaoh *wirePharaoh `json:"pharaoh"`
}

type pharaohListResponse struct {
	core.BackendStatus
	Pharaohs   []wirePharaoh           `json:"pharaohs"`
	Pagination *core.BackendPagination `json:"pagination"`
}
