package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

// Requiere un Redis real: PETPLUS_TEST_REDIS_URL=redis://localhost:6379/15
func newTestStore(t *testing.T) *Store {
	t.Helper()

	url := os.Getenv("PETPLUS_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PETPLUS_TEST_REDIS_URL not set")
	}

	client, err := NewClient(Config{URL: url})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	// prefijo único por test para no chocar con otras corridas
	return NewStore(client, "petplus-test:"+uuid.NewString()+":")
}

func TestStore_MissingKey(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.Get(context.Background(), "pets")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if found {
		t.Fatalf("expected missing key")
	}
}

func TestStore_SetGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	t.Cleanup(func() { _ = s.client.Del(context.Background(), s.key("pets")).Err() })

	if err := s.Set(ctx, "pets", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	v, found, err := s.Get(ctx, "pets")
	if err != nil || !found {
		t.Fatalf("Get error=%v found=%v", err, found)
	}
	if v != `[{"id":"1"}]` {
		t.Fatalf("unexpected value %q", v)
	}
}

func TestNewStore_DefaultPrefix(t *testing.T) {
	s := NewStore(nil, "")
	if got := s.key("pets"); got != "petplus:pets" {
		t.Fatalf("expected petplus:pets, got %q", got)
	}
}
