// Package templates exposes the history template domain operations. Updates
// merge the template id into the change set.
package templates

import "github.com/goliatone/go-gateway/core"

// Template is the public history template shape.
type Template struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// TemplateList is the payload for paginated template listings.
type TemplateList struct {
	Templates  []Template           `json:"templates"`
	Pagination *core.PaginationMeta `json:"pagination,omitempty"`
}

type GetTemplateInput struct {
	TemplateID string `json:"templateId"`
}

type ListTemplatesInput struct {
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
}

type CreateTemplateInput struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

type UpdateTemplateInput struct {
	TemplateID string `json:"templateId"`
	Name       string `json:"name,omitempty"`
	Content    string `json:"content,omitempty"`
	Category   string `json:"category,omitempty"`
}

type DeleteTemplateInput struct {
	TemplateID string `json:"templateId"`
}

type wireTemplate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Content   string          `json:"content"`
	Category  string          `json:"category"`
	CreatedAt *core.Timestamp `json:"created_at,omitempty"`
	UpdatedAt *core.Timestamp `json:"updated_at,omitempty"`
}

func (w wireTemplate) toPublic() Template {
	return Template{
		ID:        w.ID,
		Name:      w.Name,
		Content:   w.Content,
		Category:  w.Category,
		CreatedAt: w.CreatedAt.RFC3339(),
		UpdatedAt: w.UpdatedAt.RFC3339(),
	}
}

type getTemplateRequest struct {
	TemplateID string `json:"template_id"`
}

type listTemplatesRequest struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Category string `json:"category,omitempty"`
}

type createTemplateRequest struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

// updateTemplateRequest merges the template id into the flat change set.
type updateTemplateRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Content  string `json:"content,omitempty"`
	Category string `json:"category,omitempty"`
}

type templateResponse struct {
	core.BackendStatus
	Template *wireTemplate `json:"template"`
}

type templateListResponse struct {
	core.BackendStatus
	Templates  []wireTemplate          `json:"templates"`
	Pagination *core.BackendPagination `json:"pagination"`
}

type ackResponse struct {
	core.BackendStatus
}
