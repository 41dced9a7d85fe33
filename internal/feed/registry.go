package feed

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/sirupsen/logrus"
)

type session struct {
	loader   *Loader
	lastSeen time.Time
}

// Registry хранит ленты открытых сессий по идентификатору
type Registry struct {
	fetcher PageFetcher
	logger  *logrus.Logger
	opts    []Option
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry создает новый Registry. ttl <= 0 отключает вытеснение простаивающих сессий.
func NewRegistry(fetcher PageFetcher, logger *logrus.Logger, ttl time.Duration, opts ...Option) *Registry {
	return &Registry{
		fetcher:  fetcher,
		logger:   logger,
		opts:     opts,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Open создает сессию и выполняет первичное наполнение ее ленты
func (r *Registry) Open(ctx context.Context, seed []*models.Incident) (string, *Loader) {
	id := uuid.NewString()
	loader := NewLoader(r.fetcher, r.logger, r.opts...)

	r.mu.Lock()
	r.sessions[id] = &session{loader: loader, lastSeen: r.now()}
	r.mu.Unlock()

	// Новый Loader еще не инициализирован, ошибки здесь быть не может
	_ = loader.Initialize(ctx, seed)

	r.logger.WithFields(logrus.Fields{
		"session_id": id,
		"items":      len(loader.Items()),
	}).Info("Feed session opened")
	return id, loader
}

// Get возвращает ленту сессии и продлевает ее жизнь
func (r *Registry) Get(id string) (*Loader, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.loader, true
}

// Close удаляет сессию
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len возвращает количество открытых сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// PatchAll обновляет запись во всех открытых лентах после действия офицера
func (r *Registry) PatchAll(updated *models.Incident) int {
	r.mu.Lock()
	loaders := make([]*Loader, 0, len(r.sessions))
	for _, s := range r.sessions {
		loaders = append(loaders, s.loader)
	}
	r.mu.Unlock()

	total := 0
	for _, l := range loaders {
		total += l.Patch(updated)
	}
	return total
}

// Sweep удаляет сессии, простаивающие дольше ttl
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	deadline := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(deadline) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Start запускает горутину периодической очистки сессий
func (r *Registry) Start(ctx context.Context) {
	if r.ttl <= 0 {
		return
	}
	r.logger.Info("Starting feed session sweeper...")
	go func() {
		ticker := time.NewTicker(r.ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping feed session sweeper.")
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					r.logger.WithField("removed", n).Info("Expired feed sessions removed")
				}
			}
		}
	}()
}
