package apiv1

// Pong defines model for Pong.
type Pong struct {
	Message string `json:"message"`
}

// Stats defines model for Stats.
type Stats struct {
	Counters map[string]int64 `json:"counters"`
	Orders   int64            `json:"orders"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}
