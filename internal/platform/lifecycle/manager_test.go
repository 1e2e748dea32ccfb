package lifecycle

import (
	"context"
	"errors"
	"reflect"
	"syscall"
	"testing"
	"time"
)

func TestManager_Shutdown_ReverseOrder_JoinsErrors(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	errStore := errors.New("store close failed")

	m.Register("store", func(ctx context.Context) error {
		order = append(order, "store")
		return errStore
	})
	m.Register("http", func(ctx context.Context) error {
		order = append(order, "http")
		return nil
	})
	m.Register("nil", nil)

	err := m.Shutdown(context.Background())
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if !reflect.DeepEqual(order, []string{"http", "store"}) {
		t.Fatalf("expected reverse order, got %v", order)
	}
}

func TestManager_Shutdown_AppliesTimeout(t *testing.T) {
	m := New(20*time.Millisecond, nil)

	m.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := m.Shutdown(context.Background()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestManager_Listen_CancelsOnSignal(t *testing.T) {
	m := New(time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.Listen(cancel)

	// Listen ya registró el handler: la señal no termina el proceso de test
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("expected cancel after SIGTERM")
	}
}

func TestManager_Listen_NilCancel(t *testing.T) {
	// no debe registrar nada ni entrar en pánico
	New(time.Second, nil).Listen(nil)
}

func TestManager_Shutdown_NilContext(t *testing.T) {
	m := New(time.Second, nil)
	called := false
	m.Register("store", func(ctx context.Context) error {
		called = ctx != nil
		return nil
	})

	//nolint:staticcheck // contexto nil a propósito
	if err := m.Shutdown(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected hook to run with a non-nil context")
	}
}
