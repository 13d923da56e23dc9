package main

import "encoding/json"

// Client -> Server message types
const (
	MsgSpawn = "spawn"
	MsgMove  = "move"
)

// Server -> Client message types
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgDiag    = "diag"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// SpawnMsg requests a batch of troops. Pos and Dir are required;
// Count defaults to 50 and Type to a random unit type when absent.
type SpawnMsg struct {
	Pos   []float64 `json:"pos"`
	Dir   []float64 `json:"dir"`
	Count int       `json:"count,omitempty"`
	Type  string    `json:"type,omitempty"`
}

// MoveMsg reorients the listed troops toward a target position
type MoveMsg struct {
	IDs    []int64   `json:"ids"`
	Target []float64 `json:"target"`
}

// WelcomeMsg is sent to a client right after it connects
type WelcomeMsg struct {
	PlayerID int64      `json:"id"`
	Map      [2]float64 `json:"map"`
}

// PlayerState is broadcast per player each tick
type PlayerState struct {
	ID    int64    `json:"id" msgpack:"id"`
	X     float64  `json:"x" msgpack:"x"`
	Y     float64  `json:"y" msgpack:"y"`
	Color [3]uint8 `json:"c" msgpack:"c"`
}

// TroopState is broadcast per troop each tick
type TroopState struct {
	ID        int64   `json:"id" msgpack:"id"`
	Owner     int64   `json:"o" msgpack:"o"`
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	DX        float64 `json:"dx" msgpack:"dx"`
	DY        float64 `json:"dy" msgpack:"dy"`
	HP        float64 `json:"hp" msgpack:"hp"`
	Type      string  `json:"ty" msgpack:"ty"`
	Attacking bool    `json:"at,omitempty" msgpack:"at"`
}

// ProjectileState is broadcast per arrow each tick
type ProjectileState struct {
	ID    int64   `json:"id" msgpack:"id"`
	Owner int64   `json:"o" msgpack:"o"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	DX    float64 `json:"dx" msgpack:"dx"`
	DY    float64 `json:"dy" msgpack:"dy"`
}

// Snapshot is the full simulation state broadcast once per tick.
// It goes over the wire msgpack-encoded as a binary frame.
type Snapshot struct {
	Players     []PlayerState     `json:"p" msgpack:"p"`
	Troops      []TroopState      `json:"t" msgpack:"t"`
	Projectiles []ProjectileState `json:"pr" msgpack:"pr"`
	Map         [2]float64        `json:"map" msgpack:"map"`
}

// DiagMsg carries per-tick loop diagnostics
type DiagMsg struct {
	FPS            float64       `json:"fps"`
	PlayerCount    int           `json:"players"`
	TroopCount     int           `json:"troops"`
	TroopsByPlayer map[int64]int `json:"troops_by_player"`
}
