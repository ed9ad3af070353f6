package dash

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vipcourses/db"
	"vipcourses/middleware"
	"vipcourses/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Watcher pushes the pending-payments count to connected admin dashboards.
// Every payment mutation calls Notify; the watcher recounts and broadcasts.
// It must be stopped on shutdown, and clients are unregistered when their
// connection goes away.
type Watcher struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	notify     chan struct{}
	done       chan struct{}
	count      func(ctx context.Context) (int64, error)
}

type Client struct {
	Send chan []byte
}

func NewWatcher(count func(ctx context.Context) (int64, error)) *Watcher {
	return &Watcher{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		notify:     make(chan struct{}, 1),
		done:       make(chan struct{}),
		count:      count,
	}
}

func (wt *Watcher) Run() {
	for {
		select {
		case c := <-wt.register:
			wt.clients[c] = true
			wt.push(c)

		case c := <-wt.unregister:
			if wt.clients[c] {
				delete(wt.clients, c)
				close(c.Send)
			}

		case <-wt.notify:
			data, ok := wt.snapshot()
			if !ok {
				continue
			}
			for c := range wt.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(wt.clients, c)
				}
			}

		case <-wt.done:
			for c := range wt.clients {
				close(c.Send)
				delete(wt.clients, c)
			}
			return
		}
	}
}

func (wt *Watcher) Stop() {
	close(wt.done)
}

// Unregister removes a client. After Stop the drain loop is gone, so give
// up instead of blocking a disconnecting handler forever.
func (wt *Watcher) Unregister(c *Client) {
	select {
	case wt.unregister <- c:
	case <-wt.done:
	}
}

// Notify requests a recount+broadcast. Coalesces bursts.
func (wt *Watcher) Notify() {
	select {
	case wt.notify <- struct{}{}:
	default:
	}
}

func (wt *Watcher) snapshot() ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := wt.count(ctx)
	if err != nil {
		log.Println("Watcher count error:", err)
		return nil, false
	}
	data, _ := json.Marshal(map[string]int64{"pendingPayments": n})
	return data, true
}

func (wt *Watcher) push(c *Client) {
	data, ok := wt.snapshot()
	if !ok {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// CountPendingPayments is the production count source.
func CountPendingPayments(ctx context.Context) (int64, error) {
	return db.PaymentsCollection.CountDocuments(ctx, bson.M{"status": models.PaymentPending})
}

var defaultWatcher *Watcher

// SetWatcher installs the process-wide watcher started from main.
func SetWatcher(wt *Watcher) {
	defaultWatcher = wt
}

// NotifyPendingChanged is called by payment handlers after any mutation.
func NotifyPendingChanged() {
	if defaultWatcher != nil {
		defaultWatcher.Notify()
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PendingPayments upgrades to a websocket and streams count updates until
// the client disconnects.
func PendingPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.Header.Get("Authorization")
	if token == "" {
		// Browsers cannot set headers on websocket connects.
		token = "Bearer " + r.URL.Query().Get("token")
	}
	claims, err := middleware.ValidateJWT(token)
	if err != nil || claims.Role != "admin" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if defaultWatcher == nil {
		http.Error(w, "Stream unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("PendingPayments upgrade error:", err)
		return
	}

	client := &Client{Send: make(chan []byte, 8)}
	defaultWatcher.register <- client

	// writer
	go func() {
		defer conn.Close()
		for data := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}()

	// reader: only to detect disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	defaultWatcher.Unregister(client)
}
