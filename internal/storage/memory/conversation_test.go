package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id int64, sender core.Sender, text string) core.Message {
	return core.Message{ID: id, Sender: sender, Text: text, Timestamp: time.Unix(id, 0)}
}

func TestStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Append(ctx, "a", msg(1, core.SenderBot, "hello")))
	require.NoError(t, s.Append(ctx, "a", msg(2, core.SenderUser, "python?")))
	require.NoError(t, s.Append(ctx, "b", msg(1, core.SenderBot, "other")))

	got, err := s.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, "python?", got[1].Text)

	other, err := s.List(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestStore_ListUnknownSession(t *testing.T) {
	got, err := NewStore().List(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Append(ctx, "a", msg(1, core.SenderBot, "hello")))

	got, _ := s.List(ctx, "a")
	got[0].Text = "mutated"

	again, _ := s.List(ctx, "a")
	assert.Equal(t, "hello", again[0].Text)
}

func TestStore_RejectsInvalidAppends(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Append(ctx, "a", msg(1, core.SenderBot, "hello")))

	err := s.Append(ctx, "a", msg(1, core.SenderUser, "dup"))
	assert.True(t, errors.Is(err, storage.ErrNonMonotonicID))

	err = s.Append(ctx, "a", msg(2, core.Sender("system"), "bad"))
	assert.True(t, errors.Is(err, storage.ErrInvalidSender))

	got, _ := s.List(ctx, "a")
	assert.Len(t, got, 1)
}

func TestStore_ConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(sessionID string) {
			defer wg.Done()
			for i := int64(1); i <= 50; i++ {
				assert.NoError(t, s.Append(ctx, sessionID, msg(i, core.SenderUser, "x")))
			}
		}(id)
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c", "d"} {
		got, err := s.List(ctx, id)
		require.NoError(t, err)
		assert.Len(t, got, 50)
	}
}
