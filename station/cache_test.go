package station

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type memStorage struct {
	data     []byte
	readErr  error
	writeErr error
	writes   int
}

func (m *memStorage) Read() ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.data == nil {
		return nil, &CacheIOError{Op: "read", Err: errors.New("no artifact")}
	}
	return m.data, nil
}

func (m *memStorage) Write(data []byte) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = data
	return nil
}

type fakeFetcher struct {
	payload string
	err     error
	calls   int
}

func (f *fakeFetcher) FetchDirectory(ctx context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.payload, nil
}

const fetcherPayload = `'@bjb|北京北|VAP|beijingbei|bjb|0|0001|北京||@sha|上海|SHH|shanghai|sha|1|0002|上海||'`

func TestStoreLoadFetchesAndCaches(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	storage := &memStorage{}
	fetcher := &fakeFetcher{payload: fetcherPayload}
	store := NewStore(fetcher, storage, clock, DefaultTTL, zerolog.Nop())

	dir, err := store.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.Len() != 2 {
		t.Fatalf("expected 2 stations, got %d", dir.Len())
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", fetcher.calls)
	}
	if storage.writes != 1 {
		t.Fatalf("expected the artifact to be written once, got %d", storage.writes)
	}

	// second load within the TTL must not touch the network
	clock.now = clock.now.Add(6 * 24 * time.Hour)
	dir2, err := store.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Errorf("cached load should not fetch, got %d calls", fetcher.calls)
	}
	if dir2.Len() != dir.Len() {
		t.Errorf("cached directory differs: %d vs %d", dir2.Len(), dir.Len())
	}
}

func TestStoreLoadExpiredCacheRebuilds(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	storage := &memStorage{}
	fetcher := &fakeFetcher{payload: fetcherPayload}
	store := NewStore(fetcher, storage, clock, DefaultTTL, zerolog.Nop())

	if _, err := store.Load(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock.now = clock.now.Add(8 * 24 * time.Hour)
	if _, err := store.Load(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 2 {
		t.Errorf("expired cache should trigger a rebuild, got %d calls", fetcher.calls)
	}
}

func TestStoreLoadForceRefreshBypassesCache(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	storage := &memStorage{}
	fetcher := &fakeFetcher{payload: fetcherPayload}
	store := NewStore(fetcher, storage, clock, DefaultTTL, zerolog.Nop())

	if _, err := store.Load(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Load(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 2 {
		t.Errorf("force refresh must fetch, got %d calls", fetcher.calls)
	}
}

func TestStoreLoadCorruptCacheFallsBack(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	storage := &memStorage{data: []byte("{not json")}
	fetcher := &fakeFetcher{payload: fetcherPayload}
	store := NewStore(fetcher, storage, clock, DefaultTTL, zerolog.Nop())

	dir, err := store.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir.Len() != 2 {
		t.Errorf("expected a fresh directory, got %d stations", dir.Len())
	}
	if fetcher.calls != 1 {
		t.Errorf("corrupt cache should trigger a fetch, got %d calls", fetcher.calls)
	}
}

func TestStoreLoadWriteFailureIsNonFatal(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	storage := &memStorage{writeErr: &CacheIOError{Op: "write", Err: errors.New("disk full")}}
	fetcher := &fakeFetcher{payload: fetcherPayload}
	store := NewStore(fetcher, storage, clock, DefaultTTL, zerolog.Nop())

	dir, err := store.Load(context.Background(), false)
	if err != nil {
		t.Fatalf("write failure must not fail the load: %v", err)
	}
	if dir.Len() != 2 {
		t.Errorf("expected the in-memory directory, got %d stations", dir.Len())
	}
}

func TestStoreLoadFetchFailureIsFatal(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	fetchErr := errors.New("upstream down")
	store := NewStore(&fakeFetcher{err: fetchErr}, &memStorage{}, clock, DefaultTTL, zerolog.Nop())

	if _, err := store.Load(context.Background(), false); !errors.Is(err, fetchErr) {
		t.Fatalf("expected the fetch error, got %v", err)
	}
}

func TestStoreLoadUnparseablePayloadIsFatal(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewStore(&fakeFetcher{payload: "no blob here"}, &memStorage{}, clock, DefaultTTL, zerolog.Nop())

	if _, err := store.Load(context.Background(), false); err == nil {
		t.Fatal("expected an error for an unparseable payload")
	}
}
