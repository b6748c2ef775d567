package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// DefaultPagination é o estado inicial e o estado após uma falha de busca
func DefaultPagination() Pagination {
	return Pagination{
		Page:       DefaultPage,
		Limit:      DefaultLimit,
		Total:      0,
		TotalPages: 0,
	}
}

// PageRequest são os parâmetros de paginação aceitos por todas as listagens
type PageRequest struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

func (p PageRequest) WithDefaults(limit int) PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = limit
	}
	return p
}
