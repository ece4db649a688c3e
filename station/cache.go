package station

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTTL is how long a cached directory snapshot stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Envelope is the persisted {timestamp, data} pair backing the TTL policy.
type Envelope struct {
	FetchedAt time.Time `json:"fetched_at"`
	Stations  []Record  `json:"stations"`
}

// CacheIOError reports a failure reading or writing the cache artifact.
type CacheIOError struct {
	Op  string
	Err error
}

func (e *CacheIOError) Error() string { return fmt.Sprintf("station cache %s: %v", e.Op, e.Err) }
func (e *CacheIOError) Unwrap() error { return e.Err }

// Clock supplies the current time. Injected so tests can simulate TTL
// expiry without real time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

// Storage is the persistence port for the cache artifact.
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStorage persists the cache artifact at Path, creating parent
// directories as needed. Writes stage to a temp file and rename so a
// failed write leaves the previous artifact untouched.
type FileStorage struct {
	Path string
}

func (f *FileStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &CacheIOError{Op: "read", Err: err}
	}
	return data, nil
}

func (f *FileStorage) Write(data []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &CacheIOError{Op: "write", Err: err}
	}
	tmp, err := os.CreateTemp(dir, "stations_*.tmp")
	if err != nil {
		return &CacheIOError{Op: "write", Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &CacheIOError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &CacheIOError{Op: "write", Err: err}
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		return &CacheIOError{Op: "write", Err: err}
	}
	return nil
}

// Fetcher retrieves the raw directory payload from the remote source.
type Fetcher interface {
	FetchDirectory(ctx context.Context) (string, error)
}

// Store loads the station directory, consulting the cache artifact before
// going to the remote source.
type Store struct {
	fetcher Fetcher
	storage Storage
	clock   Clock
	ttl     time.Duration
	log     zerolog.Logger
}

func NewStore(fetcher Fetcher, storage Storage, clock Clock, ttl time.Duration, log zerolog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{fetcher: fetcher, storage: storage, clock: clock, ttl: ttl, log: log}
}

// Load returns the station directory. Unless forceRefresh is set, a cache
// artifact younger than the TTL is used without a network call. A cache
// read failure silently falls back to a fresh fetch; a cache write failure
// is logged and the in-memory directory is still returned.
func (s *Store) Load(ctx context.Context, forceRefresh bool) (*Directory, error) {
	if !forceRefresh {
		if dir, ok := s.loadCached(); ok {
			return dir, nil
		}
	}
	payload, err := s.fetcher.FetchDirectory(ctx)
	if err != nil {
		return nil, err
	}
	records, err := ParsePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("parse station payload: %w", err)
	}
	s.writeCache(records)
	s.log.Info().Int("stations", len(records)).Msg("station directory refreshed")
	return NewDirectory(records), nil
}

func (s *Store) loadCached() (*Directory, bool) {
	data, err := s.storage.Read()
	if err != nil {
		return nil, false
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.log.Warn().Err(err).Msg("station cache unreadable, refreshing")
		return nil, false
	}
	if s.clock.Now().Sub(env.FetchedAt) > s.ttl {
		return nil, false
	}
	return NewDirectory(env.Stations), true
}

func (s *Store) writeCache(records []Record) {
	data, err := json.Marshal(Envelope{FetchedAt: s.clock.Now(), Stations: records})
	if err == nil {
		err = s.storage.Write(data)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("station cache write failed")
	}
}
