package connectionhub

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	dbmodels "recruit-track-backend/models/db"
	wsmodels "recruit-track-backend/models/ws"
)

type stubStore struct{}

func (stubStore) Create(rec dbmodels.Notification) (string, error) { return "", nil }

func (stubStore) GetByID(id string) (*dbmodels.Notification, error) { return nil, nil }

func (stubStore) ListByUser(string, int, int) ([]dbmodels.Notification, error) { return nil, nil }

func (stubStore) ListUnread(userID string) ([]dbmodels.Notification, error) { return nil, nil }

func (stubStore) CountUnread(userID string) (int64, error) { return 0, nil }

func (stubStore) MarkRead(userID, id string) error { return nil }

func (stubStore) MarkAllRead(userID string) error { return nil }

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
		store:   stubStore{},
	}
}

func TestHubConcurrentAccess(t *testing.T) {
	hub := newTestHub()

	const users = 50
	wg := sync.WaitGroup{}
	for n := 0; n < users; n++ {
		userID := fmt.Sprintf("user-%d", n)
		wg.Add(3)
		go func() {
			defer wg.Done()
			hub.AddClient(userID, &websocket.Conn{})
		}()
		go func() {
			defer wg.Done()
			hub.SendMessage(wsmodels.ServerMessage{
				ToUserID: userID,
				Message:  "interview scheduled",
			})
		}()
		go func() {
			defer wg.Done()
			hub.DeleteClient(userID)
		}()
	}
	wg.Wait()

	for n := 0; n < users; n++ {
		hub.DeleteClient(fmt.Sprintf("user-%d", n))
	}
	require.Empty(t, hub.clients)
}

func TestHubSendAfterDelete(t *testing.T) {
	hub := newTestHub()

	hub.AddClient("user-1", &websocket.Conn{})
	hub.DeleteClient("user-1")

	// must not panic on the closed session channel
	hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user-1", Message: "dropped"})
	require.False(t, hub.IsConnected("user-1"))
}
