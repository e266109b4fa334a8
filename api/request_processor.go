package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-earth/db/sqlc"
	mb "github.com/saeidalz13/battleship-earth/models/battleship"
	mc "github.com/saeidalz13/battleship-earth/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more that enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gridManager    mb.GridManager
	dbManager      *sqlc.DbManager
	ipnet          net.IPNet
	seedFn         func() int64
}

var _ http.Handler = RequestProcessor{}

// dbManager may be nil, in which case no analytics are recorded.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gridManager mb.GridManager,
	dbManager *sqlc.DbManager,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gridManager:    gridManager,
		dbManager:      dbManager,
		seedFn:         func() int64 { return time.Now().UnixNano() },
	}

	rp.ipnet = getServerIpNet()
	return rp
}

// First non-loopback IPv4 address of the host, loopback otherwise.
func getServerIpNet() net.IPNet {
	loopback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println(err)
		return loopback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			log.Println(err)
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: ipnet.Mask}
			}
		}
	}

	log.Println("no external ipv4 found, analytics keyed by loopback")
	return loopback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn), conn)

	default:
		session, err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn)
		if err != nil {
			resp := mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID)
			resp.AddError(err.Error(), "session could not be resumed")
			if err := conn.WriteJSON(resp); err != nil {
				log.Println(err)
			}
			_ = conn.Close()
			return
		}
		rp.processSessionRequests(session, conn)
	}
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session, conn *websocket.Conn) {
	sessionId := session.Id()

	// An abnormal closure keeps the session and its grid around so the
	// client can come back with the session id.
	keepSession := false

	defer func() {
		_ = conn.Close()

		// A reconnect took over the session
		if !session.IsConn(conn) || keepSession {
			return
		}

		if gridUuid := session.GridUuid(); gridUuid != "" {
			rp.gridManager.TerminateGrid(gridUuid)
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Printf("session terminated: %s\n", sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, conn, resp); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session, conn)
		if err != nil {
			var connErr mc.ConnErr
			if errors.As(err, &connErr) && connErr.IsAbnormalClosure() {
				keepSession = true
			}
			log.Printf("session loop ended: %s\t%v\n", sessionId, err)
			break sessionLoop
		}

		// Requests still buffered on a replaced connection are dropped
		if !session.IsConn(conn) {
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := rp.sessionManager.WriteToSessionConn(session, conn, msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		// A new grid replaces whatever grid the session had before
		case mc.CodeCreateGrid:
			session.LockHandling()
			respMsg, err := NewRequest(payload).HandleCreateGrid(rp.gridManager, session, rp.seedFn())
			session.UnlockHandling()

			if err != nil {
				rp.recordAnalytics(rp.incrementPlacementFailures)
			} else if respMsg.Error == nil {
				rp.recordAnalytics(rp.incrementGridsCreated)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, conn, respMsg); err != nil {
				break sessionLoop
			}

		case mc.CodeShoot:
			session.LockHandling()
			respMsg, cleared := NewRequest(payload).HandleShoot(rp.gridManager, session)
			session.UnlockHandling()

			if respMsg.Error == nil {
				rp.recordAnalytics(rp.incrementShotsFired)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, conn, respMsg); err != nil {
				break sessionLoop
			}

			if cleared {
				respCleared := mc.NewMessage[mc.NoPayload](mc.CodeGridCleared)
				if err := rp.sessionManager.WriteToSessionConn(session, conn, respCleared); err != nil {
					break sessionLoop
				}
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, conn, respInvalidSignal); err != nil {
				break sessionLoop
			}
		}
	}
}

type analyticsFunc func(ctx context.Context, serverIp pqtype.Inet) error

func (rp RequestProcessor) incrementGridsCreated(ctx context.Context, serverIp pqtype.Inet) error {
	return rp.dbManager.Analytics.IncrementGridsCreatedCount(ctx, serverIp)
}

func (rp RequestProcessor) incrementShotsFired(ctx context.Context, serverIp pqtype.Inet) error {
	return rp.dbManager.Analytics.IncrementShotsFiredCount(ctx, serverIp)
}

func (rp RequestProcessor) incrementPlacementFailures(ctx context.Context, serverIp pqtype.Inet) error {
	return rp.dbManager.Analytics.IncrementPlacementFailuresCount(ctx, serverIp)
}

// Analytics errors are logged only; they never end the session.
func (rp RequestProcessor) recordAnalytics(fn analyticsFunc) {
	if rp.dbManager == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := fn(ctx, pqtype.Inet{IPNet: rp.ipnet, Valid: true}); err != nil {
		log.Println(err)
	}
}
