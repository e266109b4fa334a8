package api

import (
	"encoding/json"
	"errors"
	"log"

	cerr "github.com/saeidalz13/battleship-earth/internal/error"
	mb "github.com/saeidalz13/battleship-earth/models/battleship"
	mc "github.com/saeidalz13/battleship-earth/models/connection"
)

// Every incoming valid request will have this structure
// The request then is handled in line with RequestHandler interface
type Request struct {
	payload []byte
}

type RequestHandler interface {
	HandleCreateGrid(gm mb.GridManager, session *mc.Session, fallbackSeed int64) (mc.Message[mc.RespCreateGrid], error)
	HandleShoot(gm mb.GridManager, session *mc.Session) (mc.Message[mc.RespShoot], bool)
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) Request {
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return Request{}
	}

	if len(payload) == 0 {
		return Request{}
	}
	return Request{payload: payload[0]}
}

// Lays out a fresh grid for the session and drops the previous one.
// The returned error is only set for placement failures.
func (r Request) HandleCreateGrid(gm mb.GridManager, session *mc.Session, fallbackSeed int64) (mc.Message[mc.RespCreateGrid], error) {
	resp := mc.NewMessage[mc.RespCreateGrid](mc.CodeCreateGrid)

	var req mc.Message[mc.ReqCreateGrid]
	if len(r.payload) != 0 {
		if err := json.Unmarshal(r.payload, &req); err != nil {
			resp.AddError(err.Error(), "invalid create grid payload")
			return resp, nil
		}
	}

	seed := fallbackSeed
	if req.Payload.Seed != nil {
		seed = *req.Payload.Seed
	}

	if prevGridUuid := session.GridUuid(); prevGridUuid != "" {
		gm.TerminateGrid(prevGridUuid)
		session.SetGridUuid("")
	}

	gridUuid, grid, err := gm.CreateGrid(seed)
	if err != nil {
		if errors.Is(err, cerr.ErrPlacementFailure) {
			failed := mc.NewMessage[mc.RespCreateGrid](mc.CodePlacementFailed)
			failed.AddError(err.Error(), "grid settings could not be laid out")
			return failed, err
		}
		resp.AddError(err.Error(), "failed to create grid")
		return resp, nil
	}

	session.SetGridUuid(gridUuid)
	resp.AddPayload(mc.NewRespCreateGrid(gridUuid, seed, grid))
	return resp, nil
}

// The bool reports whether this shot sank the last ship.
func (r Request) HandleShoot(gm mb.GridManager, session *mc.Session) (mc.Message[mc.RespShoot], bool) {
	resp := mc.NewMessage[mc.RespShoot](mc.CodeShoot)

	var req mc.Message[mc.ReqShoot]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid shoot payload")
		return resp, false
	}

	gridUuid := session.GridUuid()
	if gridUuid == "" {
		resp.AddError(cerr.ErrGridNotCreated().Error(), cerr.ConstErrShootFailed)
		return resp, false
	}

	grid, err := gm.GetGrid(gridUuid)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrShootFailed)
		return resp, false
	}

	x, y := req.Payload.X, req.Payload.Y
	if !grid.InBounds(x, y) {
		resp.AddError(cerr.ErrXorYOutOfGridBound(x, y).Error(), cerr.ConstErrShootFailed)
		return resp, false
	}

	index := grid.Index(x, y)
	if shot, _ := grid.ShotAt(index); shot != mb.ShotNone {
		resp.AddError(cerr.ErrShotPositionAlreadyFired(x, y).Error(), cerr.ConstErrShootFailed)
		return resp, false
	}

	wasCleared := grid.IsCleared()
	hit, err := grid.Shoot(index)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrShootFailed)
		return resp, false
	}

	resp.AddPayload(mc.NewRespShoot(grid, x, y, hit))
	return resp, !wasCleared && grid.IsCleared()
}
