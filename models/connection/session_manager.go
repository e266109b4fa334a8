package connection

import (
	"context"
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-earth/internal/error"
)

const defaultCleanupInterval = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	ReconnectSession(sessionId string, conn *websocket.Conn) (*Session, error)
	TerminateSession(sessionId string)
	CleanupPeriodically(ctx context.Context, onExpire func(*Session))

	WriteToSessionConn(session *Session, conn *websocket.Conn, msg interface{}) error
	ReadFromSessionConn(session *Session, conn *websocket.Conn) (int, []byte, error)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

type SessionManagerOption func(*BattleshipSessionManager)

func WithCleanupInterval(interval time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = interval
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

// Points the session at the new connection and closes the old one,
// which ends the read loop still attached to it.
func (bsm *BattleshipSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) (*Session, error) {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return nil, err
	}

	if old := session.swapConn(conn); old != nil && old != conn {
		_ = old.Close()
	}
	log.Printf("session reconnected: %s\n", sessionId)
	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) CountSessions() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// To ensure that there are no dangling sessions, the ones idle for
// longer than the cleanup interval are removed. onExpire runs for each
// removed session, outside the lock.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context, onExpire func(*Session)) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, session := range bsm.removeIdle() {
				if onExpire != nil {
					onExpire(session)
				}
			}
		}
	}
}

func (bsm *BattleshipSessionManager) removeIdle() []*Session {
	assumedClosedConns := 10
	removed := make([]*Session, 0, assumedClosedConns)

	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	for id, session := range bsm.sessions {
		if session.idleFor() > bsm.cleanupInterval {
			removed = append(removed, session)
			delete(bsm.sessions, id)
			log.Printf("removed idle session: %s", id)
		}
	}
	return removed
}

// Writes msg to conn as long as conn is still the live connection of
// the session. Writes of one session never overlap.
func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, conn *websocket.Conn, msg interface{}) error {
	return session.writeToConnWithRetry(conn, msg)
}

// Reads the next message from conn, which is the connection the
// caller's loop was started with and not necessarily the live one.
// The returned error is a ConnErr.
func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session, conn *websocket.Conn) (int, []byte, error) {
	messageType, payload, err := conn.ReadMessage()
	if err == nil {
		session.touch()
		return messageType, payload, nil
	}

	// Swapped out by a reconnect
	if !session.IsConn(conn) {
		return -1, nil, NewConnErr(ConnLoopBreak).AddDesc("connection replaced")
	}

	return -1, nil, NewConnErr(session.handleReadFromConnErr(err)).AddDesc(err.Error())
}
