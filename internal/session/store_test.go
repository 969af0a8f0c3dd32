package session_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/quiz-wizard/internal/aiquiz"
	"github.com/saulo-duarte/quiz-wizard/internal/config"
	"github.com/saulo-duarte/quiz-wizard/internal/session"
)

func newSession() *session.Session {
	now := time.Now()
	return &session.Session{
		ID:        uuid.New(),
		Config:    aiquiz.DefaultConfig(),
		Mode:      aiquiz.InputModeText,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// exerciseStore runs the behaviour every Store implementation must share.
func exerciseStore(t *testing.T, store session.Store) {
	ctx := context.Background()

	t.Run("CreateGet", func(t *testing.T) {
		s := newSession()
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		got, err := store.Get(ctx, s.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.ID != s.ID || got.Config != s.Config {
			t.Errorf("got %+v, want %+v", got, s)
		}
	})

	t.Run("UpdateAppliesOnSuccess", func(t *testing.T) {
		s := newSession()
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		updated, err := store.Update(ctx, s.ID, func(s *session.Session) error {
			st, err := session.Load(s.State, []aiquiz.Question{question("q1", 0)})
			s.State = st
			return err
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.State.Status() != session.StatusInProgress {
			t.Errorf("status = %s, want in_progress", updated.State.Status())
		}
	})

	t.Run("UpdateDiscardsOnError", func(t *testing.T) {
		s := newSession()
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		boom := errors.New("boom")
		_, err := store.Update(ctx, s.ID, func(s *session.Session) error {
			s.Content = "changed"
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("err = %v, want %v", err, boom)
		}
		got, _ := store.Get(ctx, s.ID)
		if got.Content != "" {
			t.Errorf("failed update was persisted: %q", got.Content)
		}
	})

	t.Run("ConcurrentUpdatesSerialize", func(t *testing.T) {
		s := newSession()
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Update(ctx, s.ID, func(s *session.Session) error {
					s.WeakPoints = append(s.WeakPoints, "x")
					return nil
				})
				if err != nil {
					t.Errorf("Update failed: %v", err)
				}
			}()
		}
		wg.Wait()

		got, _ := store.Get(ctx, s.ID)
		if len(got.WeakPoints) != 4 {
			t.Errorf("weak points = %d, want 4", len(got.WeakPoints))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		s := newSession()
		if err := store.Create(ctx, s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := store.Delete(ctx, s.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, s.ID); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("err = %v, want %v", err, session.ErrSessionNotFound)
		}
		if err := store.Delete(ctx, s.ID); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("second Delete: err = %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, session.NewMemoryStore(time.Hour))

	t.Run("Expiry", func(t *testing.T) {
		store := session.NewMemoryStore(10 * time.Millisecond)
		s := newSession()
		if err := store.Create(context.Background(), s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		time.Sleep(30 * time.Millisecond)
		if _, err := store.Get(context.Background(), s.ID); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("err = %v, want %v", err, session.ErrSessionNotFound)
		}
	})

	t.Run("ReturnsCopies", func(t *testing.T) {
		store := session.NewMemoryStore(time.Hour)
		s := newSession()
		if err := store.Create(context.Background(), s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		got, _ := store.Get(context.Background(), s.ID)
		got.Content = "mutated"
		again, _ := store.Get(context.Background(), s.ID)
		if again.Content != "" {
			t.Error("store handed out its internal copy")
		}
	})
}

func redisClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		t.Cleanup(func() { client.Close() })
		if err := client.Ping(context.Background()).Err(); err != nil {
			t.Fatalf("redis at %s unavailable: %v", addr, err)
		}
		return client, nil
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestRedisStore(t *testing.T) {
	client, mr := redisClient(t)

	t.Run("Plain", func(t *testing.T) {
		exerciseStore(t, session.NewRedisStore(client, time.Minute, nil))
	})

	t.Run("Sealed", func(t *testing.T) {
		sealer, err := config.NewSealer("0123456789abcdef0123456789abcdef")
		if err != nil {
			t.Fatalf("NewSealer failed: %v", err)
		}
		store := session.NewRedisStore(client, time.Minute, sealer)
		exerciseStore(t, store)

		s := newSession()
		s.Content = "private study notes"
		if err := store.Create(context.Background(), s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		raw, err := client.Get(context.Background(), "quizwizard:session:"+s.ID.String()).Bytes()
		if err != nil {
			t.Fatalf("raw Get failed: %v", err)
		}
		if strings.Contains(string(raw), "private study notes") {
			t.Error("sealed payload stored in clear text")
		}
	})

	t.Run("Expiry", func(t *testing.T) {
		if mr == nil {
			t.Skip("expiry is checked against the in-process server only")
		}
		store := session.NewRedisStore(client, time.Minute, nil)
		s := newSession()
		if err := store.Create(context.Background(), s); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		mr.FastForward(2 * time.Minute)
		if _, err := store.Get(context.Background(), s.ID); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("err = %v, want %v", err, session.ErrSessionNotFound)
		}
	})
}
