package connectionhub

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"recruit-track-backend/db"
	notificationstore "recruit-track-backend/lib/notification/store"
	wsmodels "recruit-track-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	go i.sendUnread(userID)
}

// SendMessage pushes to the target session when connected, otherwise the
// message is dropped (it stays readable through the notification list).
// The read lock is held across the channel send so DeleteClient cannot
// close sendCh mid-send; the send itself never blocks.
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	userID := msg.ToUserID
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("user_id", userID).Warn("websocket send buffer full, push dropped")
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendUnread replays unread notifications to a freshly connected session.
func (i *impl) sendUnread(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListUnread(userID)
	if err != nil {
		logger.WithError(err).Error("unread notification replay failed")
		return
	}
	for _, rec := range list {
		i.SendMessage(wsmodels.ServerMessage{
			ToUserID: userID,
			Type:     string(rec.Type),
			Title:    rec.Title,
			Message:  rec.Message,
			Payload:  json.RawMessage(rec.Payload),
		})
	}
}
