package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-mindmap/pkg/codec"
	"github.com/mattsolo1/grove-mindmap/pkg/models"
)

// Record is the persisted form of a document.
type Record struct {
	Data      *models.Node `json:"data"`
	Version   int64        `json:"version"`
	LastSaved string       `json:"lastSaved"`
}

// Persister saves and loads the document record. Failures are logged and
// reported, never fatal: persistence is a convenience for the session.
type Persister struct {
	store Store
	log   *logrus.Entry
	now   func() time.Time
}

// NewPersister creates a persister over store. A nil logger discards output.
func NewPersister(store Store, log *logrus.Entry) *Persister {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Persister{
		store: store,
		log:   log.WithField("component", "storage"),
		now:   time.Now,
	}
}

// SetClock overrides the clock used for LastSaved stamps.
func (p *Persister) SetClock(now func() time.Time) {
	p.now = now
}

// Save writes doc and its version. On failure nothing is written under
// the version key, so HasUnsavedChanges keeps reporting the change.
func (p *Persister) Save(doc *models.Node, version int64) error {
	rec := Record{
		Data:      doc,
		Version:   version,
		LastSaved: p.now().UTC().Format(time.RFC3339Nano),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		p.log.WithError(err).Error("Failed to encode mindmap, save skipped")
		return fmt.Errorf("encode record: %w", err)
	}
	if err := p.store.Set(DataKey, string(data)); err != nil {
		p.log.WithError(err).Error("Failed to save mindmap")
		return err
	}
	if err := p.store.Set(VersionKey, strconv.FormatInt(version, 10)); err != nil {
		p.log.WithError(err).Error("Failed to save mindmap version")
		return err
	}
	p.log.WithField("version", version).Debug("Mindmap saved")
	return nil
}

// Load reads the saved record. Every failure, including a corrupt record,
// is reported as ErrNoSavedState.
func (p *Persister) Load() (*Record, error) {
	raw, ok, err := p.store.Get(DataKey)
	if err != nil {
		p.log.WithError(err).Warn("Failed to read saved mindmap")
		return nil, fmt.Errorf("%w: %v", ErrNoSavedState, err)
	}
	if !ok {
		return nil, ErrNoSavedState
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		p.log.WithError(err).Warn("Saved mindmap is corrupt, ignoring it")
		return nil, fmt.Errorf("%w: %v", ErrNoSavedState, err)
	}
	if err := codec.Normalize(rec.Data); err != nil {
		p.log.WithError(err).Warn("Saved mindmap is invalid, ignoring it")
		return nil, fmt.Errorf("%w: %v", ErrNoSavedState, err)
	}
	return &rec, nil
}

// LastSavedVersion returns the version of the last successful save, or
// false when nothing was saved.
func (p *Persister) LastSavedVersion() (int64, bool) {
	raw, ok, err := p.store.Get(VersionKey)
	if err != nil {
		p.log.WithError(err).Warn("Failed to read saved version")
		return 0, false
	}
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.log.WithError(err).Warn("Saved version is corrupt")
		return 0, false
	}
	return v, true
}

// HasUnsavedChanges reports whether version differs from the saved one.
func (p *Persister) HasUnsavedChanges(version int64) bool {
	saved, ok := p.LastSavedVersion()
	return !ok || saved != version
}

// Clear removes the saved document and version.
func (p *Persister) Clear() error {
	if err := p.store.Delete(DataKey); err != nil {
		return err
	}
	return p.store.Delete(VersionKey)
}
