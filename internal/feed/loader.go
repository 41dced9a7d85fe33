// Package feed держит ленту обращений текущей сессии: список, курсор
// пагинации и состояние загрузки.
package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPageSize        = 10
	DefaultScrollThreshold = 1000
)

var ErrAlreadyInitialized = errors.New("feed: loader already initialized")

//go:generate mockgen -source=loader.go -destination=mocks/page_fetcher.go -package=mocks

// PageFetcher - контракт внешнего хранилища для постраничного чтения
type PageFetcher interface {
	FetchPage(ctx context.Context, pageSize int, cursor models.Cursor) (*models.Page, error)
}

// State - снимок состояния ленты
type State struct {
	Items     []*models.Incident
	Cursor    models.Cursor
	IsLoading bool
	HasMore   bool
}

// Loader владеет каноническим списком обращений сессии.
// Список только дополняется в конец, порядок = порядок загрузки.
type Loader struct {
	fetcher         PageFetcher
	logger          *logrus.Logger
	pageSize        int
	scrollThreshold float64

	mu          sync.Mutex
	items       []*models.Incident
	cursor      models.Cursor
	isLoading   bool
	hasMore     bool
	initialized bool
}

// Option настраивает Loader
type Option func(*Loader)

func WithPageSize(size int) Option {
	return func(l *Loader) {
		if size > 0 {
			l.pageSize = size
		}
	}
}

func WithScrollThreshold(threshold float64) Option {
	return func(l *Loader) {
		if threshold > 0 {
			l.scrollThreshold = threshold
		}
	}
}

// NewLoader создает новый Loader
func NewLoader(fetcher PageFetcher, logger *logrus.Logger, opts ...Option) *Loader {
	l := &Loader{
		fetcher:         fetcher,
		logger:          logger,
		pageSize:        DefaultPageSize,
		scrollThreshold: DefaultScrollThreshold,
		hasMore:         true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Initialize выполняет первичное наполнение ленты. Непустой seed принимается
// как есть (курсор не задан), иначе загружается первая страница.
// Ошибка загрузки только логируется: лента остается пустой.
func (l *Loader) Initialize(ctx context.Context, seed []*models.Incident) error {
	l.mu.Lock()
	if l.initialized {
		l.mu.Unlock()
		return ErrAlreadyInitialized
	}
	l.initialized = true

	if len(seed) > 0 {
		l.items = append([]*models.Incident(nil), seed...)
		l.cursor = ""
		l.mu.Unlock()
		return nil
	}
	l.isLoading = true
	l.mu.Unlock()

	defer l.finishLoading()

	page, err := l.fetcher.FetchPage(ctx, l.pageSize, "")
	if err != nil {
		l.logger.WithError(err).WithField("method", "Initialize").Error("Failed to load initial incidents")
		return nil
	}

	if page == nil {
		return nil
	}
	l.mu.Lock()
	l.items = append([]*models.Incident(nil), page.Incidents...)
	l.cursor = page.NextCursor
	l.mu.Unlock()
	return nil
}

// LoadMore запрашивает следующую страницу. Возвращает false, если запрос
// не был отправлен: загрузка уже идет или данных больше нет.
// Повторный вызов во время загрузки отбрасывается, а не ставится в очередь.
func (l *Loader) LoadMore(ctx context.Context) bool {
	l.mu.Lock()
	if l.isLoading || !l.hasMore {
		l.mu.Unlock()
		return false
	}
	l.isLoading = true
	cursor := l.cursor
	l.mu.Unlock()

	defer l.finishLoading()

	log := l.logger.WithFields(logrus.Fields{
		"method": "LoadMore",
		"cursor": cursor,
	})

	page, err := l.fetcher.FetchPage(ctx, l.pageSize, cursor)
	if err != nil {
		// Ошибка не пробрасывается: пользователь повторит попытку прокруткой.
		// TODO: backoff и видимое пользователю состояние ошибки при повторных сбоях
		log.WithError(err).Error("Failed to load more incidents")
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if page == nil || len(page.Incidents) == 0 {
		l.hasMore = false
		log.Debug("Feed exhausted")
		return true
	}
	l.items = append(l.items, page.Incidents...)
	l.cursor = page.NextCursor
	log.WithField("count", len(page.Incidents)).Debug("Appended incidents page")
	return true
}

// OnScroll - триггер близости к концу ленты. Может срабатывать многократно,
// от дублей защищает только LoadMore.
func (l *Loader) OnScroll(ctx context.Context, distanceToBottom float64) bool {
	if distanceToBottom >= l.scrollThreshold {
		return false
	}
	return l.LoadMore(ctx)
}

// Patch заменяет в ленте записи с тем же ID на обновленную версию.
// Длина и порядок списка не меняются.
func (l *Loader) Patch(updated *models.Incident) int {
	if updated == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	replaced := 0
	for i, item := range l.items {
		if item.ID == updated.ID {
			l.items[i] = updated
			replaced++
		}
	}
	return replaced
}

// State возвращает копию текущего состояния
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{
		Items:     append([]*models.Incident(nil), l.items...),
		Cursor:    l.cursor,
		IsLoading: l.isLoading,
		HasMore:   l.hasMore,
	}
}

// Items возвращает копию списка
func (l *Loader) Items() []*models.Incident {
	return l.State().Items
}

func (l *Loader) finishLoading() {
	l.mu.Lock()
	l.isLoading = false
	l.mu.Unlock()
}
