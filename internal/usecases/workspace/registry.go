package workspace

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/usecases/administering"
	"github.com/casaalves/backoffice-api/internal/usecases/auditing"
	"github.com/casaalves/backoffice-api/internal/usecases/expensing"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/invoicing"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/internal/usecases/reporting"
	"github.com/casaalves/backoffice-api/internal/usecases/selling"
	"github.com/casaalves/backoffice-api/pkg/log"
)

// Workspace guarda as telas de um usuário, com filtros e paginação próprios
type Workspace struct {
	UserID int

	Dashboard *reporting.Page
	Expenses  *expensing.Page
	Invoices  *invoicing.Page
	Sales     *selling.Page
	Users     *administering.Page
	Logs      *auditing.Page

	lastSeen atomic.Int64
}

func (w *Workspace) touch(now time.Time) {
	w.lastSeen.Store(now.UnixNano())
}

func (w *Workspace) LastSeen() time.Time {
	return time.Unix(0, w.lastSeen.Load())
}

// Registry mantém um workspace por usuário autenticado
type Registry struct {
	client   casaalves.Client
	notifier notifying.Notifier
	now      fetching.Clock

	mu         sync.Mutex
	workspaces map[int]*Workspace
}

func NewRegistry(client casaalves.Client, notifier notifying.Notifier, clock fetching.Clock) *Registry {
	if clock == nil {
		clock = time.Now
	}

	return &Registry{
		client:     client,
		notifier:   notifier,
		now:        clock,
		workspaces: make(map[int]*Workspace),
	}
}

// Get devolve o workspace do usuário, criando-o no primeiro acesso
func (r *Registry) Get(userID int) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, ok := r.workspaces[userID]
	if !ok {
		ws = r.newWorkspace(userID)
		r.workspaces[userID] = ws
		log.L.WithField("user_id", userID).Debug("Workspace criado")
	}
	ws.touch(r.now())

	return ws
}

func (r *Registry) newWorkspace(userID int) *Workspace {
	return &Workspace{
		UserID:    userID,
		Dashboard: reporting.NewPage(r.client, r.notifier, r.now),
		Expenses:  expensing.NewPage(r.client, r.notifier, r.now),
		Invoices:  invoicing.NewPage(r.client, r.notifier, r.now),
		Sales:     selling.NewPage(r.client, r.notifier),
		Users:     administering.NewPage(r.client, r.notifier),
		Logs:      auditing.NewPage(r.client, r.notifier, r.now),
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Sweep remove workspaces sem acesso há mais de idle e devolve quantos foram removidos
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, ws := range r.workspaces {
		if ws.LastSeen().Before(cutoff) {
			delete(r.workspaces, id)
			removed++
		}
	}

	return removed
}
