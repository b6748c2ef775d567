package domain

// LogEntry é um registro de auditoria gerado pelo backend
type LogEntry struct {
	ID       int    `json:"idLog"`
	UserID   int    `json:"idUsuario"`
	UserName string `json:"nomeUsuario"`
	Action   string `json:"acao"`
	DateTime string `json:"dataHora"`
}

type LogFilters struct {
	UserID    int    `json:"idUsuario,omitempty"`
	Action    string `json:"acao,omitempty"`
	StartDate string `json:"dataInicio,omitempty"`
	EndDate   string `json:"dataFim,omitempty"`
}

type LogQuery struct {
	LogFilters
	PageRequest
}
