package model

// Wire messages between the solve server and its clients, JSON over
// websocket.

type ClientMessage struct {
	// Op is one of "scenario", "solve", "force".
	Op string `json:"op"`
	// Scenario parameters. Obstacles is the number of random obstacles to
	// scatter on top of the layout (0 takes the server default, negative
	// scatters none), Seed makes the placement reproducible (0 means
	// time-based). Layout optionally carries an inline layout in the data
	// file format; when empty the fixed layout is used.
	Obstacles int    `json:"obstacles,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Layout    string `json:"layout,omitempty"`
}

type ServerMessage struct {
	Session   string `json:"session,omitempty"`
	Obstacles []Cell `json:"obstacles,omitempty"`
	Route     []Cell `json:"route,omitempty"`
	Crossed   []Cell `json:"crossed,omitempty"`
	Steps     int    `json:"steps,omitempty"`
	Found     bool   `json:"found"`
	Error     string `json:"error,omitempty"`
}
