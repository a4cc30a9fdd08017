package mailbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox_LatestWins(t *testing.T) {
	m := New[int]()
	m.Put(1)
	m.Put(2)
	m.Put(3)

	require.True(t, m.HasJob())

	got, err := m.Take(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.False(t, m.HasJob())
	assert.Nil(t, m.TryTake())
}

func TestMailbox_TakeBlocksUntilPut(t *testing.T) {
	m := New[string]()
	got := make(chan string, 1)

	go func() {
		j, err := m.Take(context.Background())
		if err == nil {
			got <- j
		}
	}()

	select {
	case <-got:
		t.Fatal("Take returned before Put")
	case <-time.After(20 * time.Millisecond):
	}

	m.Put("backup")

	select {
	case j := <-got:
		assert.Equal(t, "backup", j)
	case <-time.After(time.Second):
		t.Fatal("Take did not return after Put")
	}
}

func TestMailbox_TakeHonoursContext(t *testing.T) {
	m := New[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Take(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMailbox_StaleTokenDoesNotBlock(t *testing.T) {
	m := New[int]()
	m.Put(1)
	require.NotNil(t, m.TryTake()) // leaves the notify token behind

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Take(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	m.Put(7)
	j, err := m.Take(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, j)
}
