package connection

// Seed is optional; the server picks one when it is absent.
type ReqCreateGrid struct {
	Seed *int64 `json:"seed,omitempty"`
}

type ReqShoot struct {
	X int `json:"x"`
	Y int `json:"y"`
}
