package connection

import (
	"log"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWriteWsRetries uint8 = 2
	backOffFactor     uint8 = 2
)

type ConnectionHandler interface {
	handleReadFromConnErr(err error) uint8
	writeToConnWithRetry(conn *websocket.Conn, msg interface{}) error
	onConnErr(err error) uint8
}

// Session outlives a single websocket connection: a client that drops
// abnormally can reconnect with the session id and keep its grid.
type Session struct {
	id       string
	conn     *websocket.Conn
	gridUuid string
	lastSeen time.Time
	mu       sync.RWMutex

	// held while one request is handled so two connections of the
	// same session never touch the grid at once
	handleMu sync.Mutex

	// gorilla/websocket allows one writer per connection
	writeMu sync.Mutex
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:       id,
		conn:     conn,
		lastSeen: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conn
}

// IsConn reports whether conn is still the live connection of the
// session. It turns false once a reconnect swapped it out.
func (s *Session) IsConn(conn *websocket.Conn) bool {
	return s.Conn() == conn
}

func (s *Session) GridUuid() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gridUuid
}

func (s *Session) SetGridUuid(gridUuid string) {
	s.mu.Lock()
	s.gridUuid = gridUuid
	s.mu.Unlock()
}

func (s *Session) LockHandling()   { s.handleMu.Lock() }
func (s *Session) UnlockHandling() { s.handleMu.Unlock() }

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleFor() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.lastSeen)
}

func (s *Session) swapConn(conn *websocket.Conn) *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.conn
	s.conn = conn
	s.lastSeen = time.Now()
	return old
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	// Browser tab closed or network dropped without a close frame
	if websocket.IsCloseError(err, websocket.CloseAbnormalClosure) {
		log.Println("abnormal closure error:", err)
		return ConnLoopAbnormalClosureRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		log.Println("critical error:", err)
		return ConnLoopBreak
	}

	/*
		Most likely not our client. Breaking so invalid payloads
		(e.g. binary data or non UTF-8 text) do not keep the loop busy.
	*/
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		log.Println("non-critical error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// Writes msg as JSON to conn, retrying with a linear back off on
// timeouts and server load errors. conn is the connection the caller's
// loop owns; once a reconnect swapped it out nothing is written, so a
// stale loop never answers on the new connection.
func (s *Session) writeToConnWithRetry(conn *websocket.Conn, msg interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8

	for {
		if !s.IsConn(conn) {
			return NewConnErr(ConnLoopBreak).AddDesc("connection replaced")
		}

		err := conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		switch s.onConnErr(err) {
		case ConnLoopRetry:
			if retries < maxWriteWsRetries {
				retries++
				log.Printf("writing json failed to ws [%s]; retrying... (retry no. %d)\n", conn.RemoteAddr().String(), retries)
				time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
				continue
			}
			log.Printf("max retries reached for writing to ws [%s]:%s", conn.RemoteAddr().String(), err)
			return NewConnErr(ConnLoopBreak).AddDesc("max write retries reached")

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry).AddDesc(err.Error())

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
		}
	}
}

// Decides what the read loop does after a failed read. A failed read
// leaves the gorilla connection broken for good, so nothing is retried;
// only an abnormal closure is told apart so the session can be resumed.
func (s *Session) handleReadFromConnErr(err error) uint8 {
	if s.onConnErr(err) == ConnLoopAbnormalClosureRetry {
		return ConnLoopAbnormalClosureRetry
	}
	log.Printf("break ws conn loop [%s] due to: %s\n", s.id, err)
	return ConnLoopBreak
}

var _ ConnectionHandler = (*Session)(nil)
