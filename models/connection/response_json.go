package connection

import (
	mb "github.com/saeidalz13/battleship-earth/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

// Ships stay hidden; earths and towers are drawn on both sides.
type RespCreateGrid struct {
	GridUuid   string     `json:"grid_uuid"`
	Seed       int64      `json:"seed"`
	Rows       int        `json:"rows"`
	Cols       int        `json:"cols"`
	Earths     []mb.Earth `json:"earths"`
	Towers     []mb.Tower `json:"towers"`
	ShipsLeft  int        `json:"ships_left"`
	TowersLeft int        `json:"towers_left"`
}

func NewRespCreateGrid(gridUuid string, seed int64, grid *mb.Grid) RespCreateGrid {
	return RespCreateGrid{
		GridUuid:   gridUuid,
		Seed:       seed,
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		Earths:     grid.Earths(),
		Towers:     grid.Towers(),
		ShipsLeft:  grid.ShipsLeft(),
		TowersLeft: grid.TowersLeft(),
	}
}

type RespShoot struct {
	X             int          `json:"x"`
	Y             int          `json:"y"`
	Index         int          `json:"index"`
	Hit           bool         `json:"hit"`
	PositionState mb.ShotState `json:"position_state"`
	SunkShips     []mb.Ship    `json:"sunk_ships"`
	SunkTowers    []mb.Tower   `json:"sunk_towers"`
	ShipsLeft     int          `json:"ships_left"`
	TowersLeft    int          `json:"towers_left"`
}

func NewRespShoot(grid *mb.Grid, x, y int, hit bool) RespShoot {
	index := grid.Index(x, y)
	positionState, _ := grid.ShotAt(index)

	return RespShoot{
		X:             x,
		Y:             y,
		Index:         index,
		Hit:           hit,
		PositionState: positionState,
		SunkShips:     grid.SunkShips(),
		SunkTowers:    grid.SunkTowers(),
		ShipsLeft:     grid.ShipsLeft(),
		TowersLeft:    grid.TowersLeft(),
	}
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
