package notifying

import (
	"context"
	"sync"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/log"
)

// Notifier informa o usuário sobre o resultado de buscas e mutações
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// LogNotifier registra as notificações no log da aplicação
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Success(ctx context.Context, message string) {
	log.ForContext(ctx).WithField("notification", "success").Info(message)
}

func (n *LogNotifier) Error(ctx context.Context, message string) {
	log.ForContext(ctx).WithField("notification", "error").Warn(message)
}

// Recorder acumula as notificações de uma requisição para devolvê-las na resposta
type Recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (r *Recorder) add(kind domain.NotificationKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, domain.Notification{Kind: kind, Message: message})
}

// Notifications devolve uma cópia das notificações registradas, nunca nil
func (r *Recorder) Notifications() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

type recorderKey struct{}

// WithRecorder cria um Recorder e o associa ao contexto da requisição
func WithRecorder(ctx context.Context) (context.Context, *Recorder) {
	rec := &Recorder{}
	return context.WithValue(ctx, recorderKey{}, rec), rec
}

// FromContext devolve o Recorder da requisição, ou nil fora de uma requisição
func FromContext(ctx context.Context) *Recorder {
	rec, _ := ctx.Value(recorderKey{}).(*Recorder)
	return rec
}

// ContextNotifier grava no Recorder do contexto; sem Recorder a notificação é descartada
type ContextNotifier struct{}

func (ContextNotifier) Success(ctx context.Context, message string) {
	if rec := FromContext(ctx); rec != nil {
		rec.add(domain.NotificationSuccess, message)
	}
}

func (ContextNotifier) Error(ctx context.Context, message string) {
	if rec := FromContext(ctx); rec != nil {
		rec.add(domain.NotificationError, message)
	}
}

type multi []Notifier

// Multi repassa cada notificação para todos os notifiers
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

func (m multi) Success(ctx context.Context, message string) {
	for _, n := range m {
		n.Success(ctx, message)
	}
}

func (m multi) Error(ctx context.Context, message string) {
	for _, n := range m {
		n.Error(ctx, message)
	}
}

// Default é o notifier usado pelo gateway: log e resposta HTTP
func Default() Notifier {
	return Multi(NewLogNotifier(), ContextNotifier{})
}
