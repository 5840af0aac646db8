package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-mindmap/pkg/autosave"
	"github.com/mattsolo1/grove-mindmap/pkg/codec"
	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
	"github.com/mattsolo1/grove-mindmap/pkg/session"
	"github.com/mattsolo1/grove-mindmap/pkg/storage"
)

// Service ties the mindmap session to its storage
type Service struct {
	Config    *Config
	Store     storage.Store
	persister *storage.Persister
	autosave  *autosave.Debouncer
	log       *logrus.Entry
	now       func() time.Time
}

// Config holds service configuration
type Config struct {
	DataDir     string        `mapstructure:"data_dir"`
	HistorySize int           `mapstructure:"history_size"`
	SaveDelay   time.Duration `mapstructure:"save_delay"`
	Layout      layout.Config `mapstructure:"layout"`
	LogLevel    string        `mapstructure:"log_level"`
	// Ephemeral keeps the document in memory only.
	Ephemeral bool `mapstructure:"ephemeral"`
}

// New creates a new mindmap service
func New(config *Config, log *logrus.Logger) (*Service, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	entry := logrus.NewEntry(log)

	var store storage.Store
	if config.Ephemeral {
		store = storage.NewMemoryStore()
	} else {
		sq, err := storage.NewSQLiteStore(config.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		store = sq
	}

	return &Service{
		Config:    config,
		Store:     store,
		persister: storage.NewPersister(store, entry),
		autosave:  autosave.New(config.SaveDelay),
		log:       entry.WithField("component", "service"),
		now:       time.Now,
	}, nil
}

// Close releases the store
func (s *Service) Close() error {
	return s.Store.Close()
}

// Persister exposes the saved-state helpers
func (s *Service) Persister() *storage.Persister {
	return s.persister
}

// Open starts a session on the saved document, or on the starter document
// when nothing usable is saved. Every change made through the session
// schedules an autosave.
func (s *Service) Open() *session.Session {
	doc := models.NewDocument()
	var version int64
	rec, err := s.persister.Load()
	switch {
	case err == nil:
		doc, version = rec.Data, rec.Version
		s.log.WithField("version", version).Debug("Loaded saved mindmap")
	case errors.Is(err, storage.ErrNoSavedState):
		s.log.Debug("No saved mindmap, starting fresh")
	}

	return session.New(doc,
		session.WithHistorySize(s.Config.HistorySize),
		session.WithLayout(s.Config.Layout),
		session.WithVersion(version),
		session.WithClock(s.now),
		session.WithLogger(logrus.NewEntry(s.log.Logger)),
		session.WithOnChange(func(*models.Node, int64) {
			s.autosave.Touch(s.now())
		}),
	)
}

// Save writes the session's document immediately and drops any pending
// autosave.
func (s *Service) Save(sess *session.Session) error {
	s.autosave.Cancel()
	return s.persister.Save(sess.Document(), sess.Version())
}

// Tick runs a pending autosave once its quiet period has passed. It
// reports whether a save was attempted. Failures are logged only.
func (s *Service) Tick(sess *session.Session, now time.Time) bool {
	if !s.autosave.Due(now) {
		return false
	}
	if err := s.persister.Save(sess.Document(), sess.Version()); err != nil {
		s.log.WithError(err).Warn("Autosave skipped")
	}
	return true
}

// SavePending reports whether an autosave is scheduled.
func (s *Service) SavePending() bool {
	return s.autosave.Pending()
}

// Unsaved reports whether the session differs from the saved document.
func (s *Service) Unsaved(sess *session.Session) bool {
	return s.persister.HasUnsavedChanges(sess.Version())
}

// Mutate opens a session, applies fn and saves the result. It is used by
// one-shot commands.
func (s *Service) Mutate(fn func(*session.Session) error) (*session.Session, error) {
	sess := s.Open()
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.Save(sess); err != nil {
		return nil, fmt.Errorf("save mindmap: %w", err)
	}
	return sess, nil
}

// Export encodes the session's document.
func (s *Service) Export(sess *session.Session, format codec.Format) ([]byte, error) {
	return codec.Encode(sess.Document(), format)
}

// ImportFile reads a document from path, choosing the format from the file
// extension, and replaces the saved document with it.
func (s *Service) ImportFile(path string) (*session.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := codec.Decode(data, codec.FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return s.Mutate(func(sess *session.Session) error {
		return sess.Replace(doc)
	})
}

// SetClock overrides the clock, used by tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.persister.SetClock(now)
}
