package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/saeidalz13/battleship-earth/db/sqlc"
	mb "github.com/saeidalz13/battleship-earth/models/battleship"
	mc "github.com/saeidalz13/battleship-earth/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort int = 8000

	URLPathBattleship string = "GET /battleship"
)

type Server struct {
	port           int
	stage          string
	settings       mb.Settings
	dbManager      *sqlc.DbManager
	cleanupEvery   time.Duration
	SessionManager *mc.BattleshipSessionManager
	GridManager    *mb.BattleshipGridManager
	rp             RequestProcessor
}

type Option func(*Server) error

func NewServer(optFuncs ...Option) *Server {
	server := Server{
		port:     defaultPort,
		stage:    StageDev,
		settings: mb.DefaultSettings(),
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	var smOpts []mc.SessionManagerOption
	if server.cleanupEvery > 0 {
		smOpts = append(smOpts, mc.WithCleanupInterval(server.cleanupEvery))
	}

	server.SessionManager = mc.NewBattleshipSessionManager(smOpts...)
	server.GridManager = mb.NewBattleshipGridManager(server.settings)
	server.rp = NewRequestProcessor(server.SessionManager, server.GridManager, server.dbManager)

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithSettings(settings mb.Settings) Option {
	return func(s *Server) error {
		if err := settings.Validate(); err != nil {
			return err
		}
		s.settings = settings
		return nil
	}
}

// Analytics are skipped when no db manager is given.
func WithDbManager(dbManager *sqlc.DbManager) Option {
	return func(s *Server) error {
		s.dbManager = dbManager
		return nil
	}
}

func WithCleanupInterval(interval time.Duration) Option {
	return func(s *Server) error {
		s.cleanupEvery = interval
		return nil
	}
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) RequestProcessor() RequestProcessor {
	return s.rp
}

func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(URLPathBattleship, s.rp)
	return mux
}

// Removes idle sessions along with their grids until ctx is done.
func (s *Server) ManageSessionsCleanup(ctx context.Context) {
	s.SessionManager.CleanupPeriodically(ctx, func(session *mc.Session) {
		if gridUuid := session.GridUuid(); gridUuid != "" {
			s.GridManager.TerminateGrid(gridUuid)
		}
	})
}
