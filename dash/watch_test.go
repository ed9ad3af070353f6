package dash

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestWatcherRegisterNotifyUnregister(t *testing.T) {
	var n int64 = 3
	wt := NewWatcher(func(ctx context.Context) (int64, error) {
		return n, nil
	})
	go wt.Run()
	defer wt.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	wt.register <- client

	// registration pushes the current count immediately
	expectCount(t, client, 3)

	n = 7
	wt.Notify()
	expectCount(t, client, 7)

	wt.unregister <- client
	if _, ok := <-client.Send; ok {
		// channel may still hold a buffered frame; drain until closed
		for range client.Send {
		}
	}
}

func TestWatcherNotifyCoalesces(t *testing.T) {
	wt := NewWatcher(func(ctx context.Context) (int64, error) {
		return 0, nil
	})

	// Until Run drains the channel, repeated notifies collapse into one.
	wt.Notify()
	wt.Notify()
	wt.Notify()

	if got := len(wt.notify); got != 1 {
		t.Fatalf("expected a single pending notification, got %d", got)
	}
}

func TestWatcherUnregisterAfterStop(t *testing.T) {
	wt := NewWatcher(func(ctx context.Context) (int64, error) {
		return 0, nil
	})
	go wt.Run()
	wt.Stop()

	returned := make(chan struct{})
	go func() {
		wt.Unregister(&Client{Send: make(chan []byte, 1)})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after Stop")
	}
}

func expectCount(t *testing.T, client *Client, want int64) {
	t.Helper()
	select {
	case data := <-client.Send:
		var got map[string]int64
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("bad frame %s: %v", data, err)
		}
		if got["pendingPayments"] != want {
			t.Fatalf("expected count %d, got %d", want, got["pendingPayments"])
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for count %d", want)
	}
}
