package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGrid
	CodeShoot

	// Sent after the shot that sinks the last ship
	CodeGridCleared

	// Settings could not be laid out on the grid
	CodePlacementFailed

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
