package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-h.Done()
	})
	return h, cancel
}

func testClient(h *Hub, userID string, buf int) *Client {
	return &Client{hub: h, userID: userID, send: make(chan []byte, buf)}
}

func TestHub_DeliversOnlyToOwner(t *testing.T) {
	h, _ := startHub(t)
	alice := testClient(h, "alice", 4)
	bob := testClient(h, "bob", 4)
	h.Register(alice)
	h.Register(bob)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	h.Notify("alice", EventDailyOutfitReady, map[string]string{"outfit": "o1"})

	select {
	case msg := <-alice.send:
		var evt Event
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventDailyOutfitReady, evt.Type)
		assert.Equal(t, "alice", evt.UserID)
		assert.NotEmpty(t, evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("alice got no event")
	}

	select {
	case <-bob.send:
		t.Fatal("bob received alice's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h, _ := startHub(t)
	slow := testClient(h, "alice", 0)
	h.Register(slow)
	require.Eventually(t, func() bool { return h.UserClientCount("alice") == 1 }, time.Second, 5*time.Millisecond)

	h.Notify("alice", EventFeedbackSubmitted, nil)

	require.Eventually(t, func() bool { return h.UserClientCount("alice") == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_UnregisterAndShutdown(t *testing.T) {
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	a := testClient(h, "alice", 1)
	b := testClient(h, "alice", 1)
	h.Register(a)
	h.Register(b)
	require.Eventually(t, func() bool { return h.UserClientCount("alice") == 2 }, time.Second, 5*time.Millisecond)

	h.Unregister(a)
	require.Eventually(t, func() bool { return h.UserClientCount("alice") == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-h.Done()
	_, open := <-b.send
	assert.False(t, open)
	assert.Equal(t, 0, h.ClientCount())

	h.Register(testClient(h, "late", 1))
	h.Unregister(a)
}

func TestHub_NilSafe(t *testing.T) {
	var h *Hub
	h.Notify("a", "x", nil)
	h.Register(nil)
	assert.Equal(t, 0, h.ClientCount())
}
