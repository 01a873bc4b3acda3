// Package session holds the authenticated identity: the current user and the
// bearer token. The store is an explicit, injectable object — it is handed to
// the HTTP client as its token source and to the route guard as its identity
// source — with file persistence so a session survives process restarts.
package session

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/colegioprofesionales/colegio-cli/internal/client/models"
	"github.com/colegioprofesionales/colegio-cli/internal/common"
	"github.com/colegioprofesionales/colegio-cli/internal/filex"
	"github.com/colegioprofesionales/colegio-cli/internal/logging"
)

// Store is the single owner of session state. All mutation goes through Set
// and Clear; everything else only reads.
type Store struct {
	mu       sync.Mutex
	path     string
	token    string
	user     *models.Usuario
	log      logging.Logger
	navigate func(route string)
}

type Option func(*Store)

// WithLogger attaches a structured logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l.With("component", "session") }
}

// WithNavigator registers the router signal invoked when the session is
// force-cleared by a 401. The CLI uses it to fall back to the login prompt.
func WithNavigator(fn func(route string)) Option {
	return func(s *Store) { s.navigate = fn }
}

// persisted is the on-disk shape: the token and the serialized user, nothing
// else ever leaves memory.
type persisted struct {
	Token string         `json:"token"`
	User  models.Usuario `json:"user"`
}

// New builds a Store bound to the given session file and restores any
// previously persisted session. A missing or unreadable file simply yields
// an empty session.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		if s.log != nil {
			s.log.Warn(context.Background(), "discarding corrupt session file", "path", s.path)
		}
		return
	}
	if p.Token == "" {
		return
	}
	s.token = p.Token
	s.user = &p.User
}

// Set stores the authenticated user and token and persists them. The write
// is atomic (temp file + rename) so a crash never leaves a torn session.
func (s *Store) Set(user models.Usuario, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	u := user
	s.user = &u

	data, err := json.Marshal(persisted{Token: token, User: user})
	if err != nil {
		return err
	}
	return filex.WriteAtomic(s.path, data, 0o600)
}

// Clear wipes the in-memory session and removes the persisted file. It is
// idempotent: clearing an already-empty session is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	_ = os.Remove(s.path)
}

// Token implements the transport's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the session owner, if any.
func (s *Store) User() (models.Usuario, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.Usuario{}, false
	}
	return *s.user, true
}

// Rol returns the session owner's role, empty when unauthenticated.
func (s *Store) Rol() models.Rol {
	if u, ok := s.User(); ok {
		return u.Rol
	}
	return ""
}

// IsAuthenticated is a pure derivation: token presence.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// TokenExpiresAt inspects the bearer token's exp claim without verifying the
// signature (verification is the backend's job). Returns the zero time when
// the token is absent, opaque, or carries no expiry.
func (s *Store) TokenExpiresAt() time.Time {
	tok := s.Token()
	if tok == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// HandleUnauthorized is the single subscriber to the transport's 401 event:
// it clears the session and signals the router to go to the login route.
func (s *Store) HandleUnauthorized() {
	if s.log != nil {
		s.log.Warn(context.Background(), "session rejected by backend, logging out")
	}
	s.Clear()
	if s.navigate != nil {
		s.navigate(common.LoginRoute)
	}
}
