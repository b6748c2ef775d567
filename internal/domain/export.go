package domain

import "time"

const CSVContentType = "text/csv; charset=utf-8"

// Download é um arquivo pronto para ser entregue ao navegador
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportRecord registra uma exportação realizada pelo gateway
type ExportRecord struct {
	ID        string    `json:"id"`
	Resource  string    `json:"resource"`
	Filename  string    `json:"filename"`
	UserID    int       `json:"idUsuario"`
	SizeBytes int       `json:"sizeBytes"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification é a mensagem exibida como toast pela interface
type Notification struct {
	Kind    NotificationKind `json:"type"`
	Message string           `json:"message"`
}
