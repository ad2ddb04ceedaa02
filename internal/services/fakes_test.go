package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"wastewise-admin-service/internal/domain"
	"wastewise-admin-service/internal/ports"
)

// memTable is an in-memory repository keyed by id, kept in insertion order.
type memTable[T any] struct {
	mu   sync.Mutex
	rows []*T
	id   func(*T) string
	err  error
}

func newMemTable[T any](id func(*T) string) *memTable[T] {
	return &memTable[T]{id: id}
}

func (m *memTable[T]) List(ctx context.Context) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*T, 0, len(m.rows))
	for _, r := range m.rows {
		c := *r
		out = append(out, &c)
	}
	return out, nil
}

func (m *memTable[T]) GetByID(ctx context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if m.id(r) == id {
			c := *r
			return &c, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (m *memTable[T]) Create(ctx context.Context, row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if m.id(r) == m.id(row) {
			return ports.ErrDuplicate
		}
	}
	c := *row
	m.rows = append(m.rows, &c)
	return nil
}

func (m *memTable[T]) Update(ctx context.Context, row *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if m.id(r) == m.id(row) {
			c := *row
			m.rows[i] = &c
			return nil
		}
	}
	return ports.ErrNotFound
}

func (m *memTable[T]) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if m.id(r) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return ports.ErrNotFound
}

type memRoutes struct{ *memTable[domain.Route] }

func (m memRoutes) ListByZone(ctx context.Context, zoneID string) ([]*domain.Route, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []*domain.Route{}
	for _, r := range all {
		if r.ZoneID == zoneID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memLogs struct {
	*memTable[domain.CollectionLog]
}

func (m memLogs) Find(ctx context.Context, f ports.LogFilter) ([]*domain.CollectionLog, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []*domain.CollectionLog{}
	for _, l := range all {
		if f.ZoneID != "" && l.ZoneID != f.ZoneID {
			continue
		}
		if f.VehicleID != "" && l.VehicleID != f.VehicleID {
			continue
		}
		if !f.From.IsZero() && l.StartTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !l.StartTime.Before(f.To) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

type memUsers struct{ *memTable[domain.User] }

func (m memUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	all, _ := m.List(ctx)
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (m memUsers) UpdateTheme(ctx context.Context, id string, theme domain.Theme) error {
	u, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Theme = theme
	return m.Update(ctx, u)
}

type memStore struct {
	workers     *memTable[domain.Worker]
	zones       *memTable[domain.Zone]
	routes      memRoutes
	vehicles    *memTable[domain.Vehicle]
	logs        memLogs
	assignments *memTable[domain.Assignment]
	users       memUsers
}

func newMemStore() *memStore {
	return &memStore{
		workers:     newMemTable(func(w *domain.Worker) string { return w.ID }),
		zones:       newMemTable(func(z *domain.Zone) string { return z.ID }),
		routes:      memRoutes{newMemTable(func(r *domain.Route) string { return r.ID })},
		vehicles:    newMemTable(func(v *domain.Vehicle) string { return v.ID }),
		logs:        memLogs{newMemTable(func(l *domain.CollectionLog) string { return l.ID })},
		assignments: newMemTable(func(a *domain.Assignment) string { return a.ID }),
		users:       memUsers{newMemTable(func(u *domain.User) string { return u.ID })},
	}
}

func (s *memStore) repos() ports.Repositories {
	return ports.Repositories{
		Workers:     s.workers,
		Zones:       s.zones,
		Routes:      s.routes,
		Vehicles:    s.vehicles,
		Logs:        s.logs,
		Assignments: s.assignments,
		Users:       s.users,
	}
}

// memSummaryCache counts hits so tests can see read-through behaviour.
type memSummaryCache struct {
	mu      sync.Mutex
	gen     int
	entries map[string][]byte
	hits    int
}

func newMemSummaryCache() *memSummaryCache {
	return &memSummaryCache{entries: map[string][]byte{}}
}

func (c *memSummaryCache) Generation(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strconv.Itoa(c.gen), nil
}

func (c *memSummaryCache) Get(ctx context.Context, gen, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[gen+"|"+key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *memSummaryCache) Put(ctx context.Context, gen, key string, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[gen+"|"+key] = payload
	return nil
}

func (c *memSummaryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return nil
}

// afterListLogs runs hook once, right after the wrapped List returns.
type afterListLogs struct {
	ports.CollectionLogRepository
	once sync.Once
	hook func()
}

func (r *afterListLogs) List(ctx context.Context) ([]*domain.CollectionLog, error) {
	logs, err := r.CollectionLogRepository.List(ctx)
	r.once.Do(r.hook)
	return logs, err
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]string
}

func (s *memSessions) Create(ctx context.Context, accessID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = map[string]string{}
	}
	s.sessions[accessID] = userID
	return nil
}

func (s *memSessions) HasSession(ctx context.Context, accessID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[accessID]
	return ok, nil
}

func (s *memSessions) Revoke(ctx context.Context, accessID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, accessID)
	return nil
}

type memConsoles struct {
	mu     sync.Mutex
	states map[string]domain.ConsoleState
}

func (c *memConsoles) Load(ctx context.Context, accessID string) (domain.ConsoleState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.states[accessID]; ok {
		return st, nil
	}
	return domain.NewConsoleState(), nil
}

func (c *memConsoles) Save(ctx context.Context, accessID string, st domain.ConsoleState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states == nil {
		c.states = map[string]domain.ConsoleState{}
	}
	c.states[accessID] = st
	return nil
}

func (c *memConsoles) Delete(ctx context.Context, accessID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, accessID)
	return nil
}

func ptr[T any](v T) *T { return &v }

// fixedNow is a Wednesday.
var fixedNow = time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
