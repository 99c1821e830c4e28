package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

type sessionGauge interface {
	SetActiveSessions(n int)
}

// WorkspaceFactory builds the workspace for a new session id.
type WorkspaceFactory func(id string) *Workspace

// SessionConfig tunes session expiry.
type SessionConfig struct {
	IdleTTL time.Duration
}

type sessionEntry struct {
	workspace *Workspace
	lastSeen  time.Time
}

// SessionService owns the workspaces of every open session.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	factory  WorkspaceFactory
	cfg      SessionConfig
	metrics  sessionGauge
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(factory WorkspaceFactory, cfg SessionConfig, metrics sessionGauge, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 30 * time.Minute
	}
	return &SessionService{
		sessions: make(map[string]*sessionEntry),
		factory:  factory,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Create opens a session and performs the initial load of its views. Load failures are kept
// in the view state rather than failing the session.
func (s *SessionService) Create(ctx context.Context) (*Workspace, error) {
	id := uuid.NewString()
	ws := s.factory(id)
	if ws == nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "failed to create workspace")
	}

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{workspace: ws, lastSeen: s.now()}
	s.publishLocked()
	s.mu.Unlock()

	if err := ws.Load(ctx); err != nil {
		s.logger.Warn("initial load incomplete", zap.String("session_id", id), zap.Error(err))
	}
	s.logger.Info("session created", zap.String("session_id", id))
	return ws, nil
}

// Get returns the workspace of id and marks it as used.
func (s *SessionService) Get(id string) (*Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	entry.lastSeen = s.now()
	return entry.workspace, nil
}

// Close tears the session down.
func (s *SessionService) Close(id string) error {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		s.publishLocked()
	}
	s.mu.Unlock()
	if !ok {
		return appErrors.ErrSessionNotFound
	}
	entry.workspace.Close()
	s.logger.Info("session closed", zap.String("session_id", id))
	return nil
}

// Sweep closes sessions idle for longer than the configured TTL and returns how many.
func (s *SessionService) Sweep() int {
	cutoff := s.now().Add(-s.cfg.IdleTTL)
	var expired []*sessionEntry

	s.mu.Lock()
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry)
			delete(s.sessions, id)
		}
	}
	if len(expired) > 0 {
		s.publishLocked()
	}
	s.mu.Unlock()

	for _, entry := range expired {
		entry.workspace.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("idle sessions expired", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is cancelled.
func (s *SessionService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Count returns the number of open sessions.
func (s *SessionService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// CloseAll tears down every session, used on shutdown.
func (s *SessionService) CloseAll() {
	s.mu.Lock()
	entries := s.sessions
	s.sessions = make(map[string]*sessionEntry)
	s.publishLocked()
	s.mu.Unlock()

	for _, entry := range entries {
		entry.workspace.Close()
	}
}

func (s *SessionService) publishLocked() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(len(s.sessions))
	}
}
