package main

import (
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate   = 30 // simulation ticks per second (target)
	TickPeriod = time.Second / TickRate

	MapWidth  = 2000.0
	MapHeight = 2000.0

	DefaultSpawnCount = 50
	MaxTroops         = 3000 // global cap so one client can't wedge the loop
	MaxProjectiles    = 1000
)

// Broadcaster interface for sending messages to clients
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Player represents a connected player
type Player struct {
	ID    int64
	X, Y  float64
	Color [3]uint8
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{ID: p.ID, X: p.X, Y: p.Y, Color: p.Color}
}

// Game owns the whole battlefield: players keyed by connection handle,
// troops and projectiles as dense lists, and the monotonic id counters.
// All mutation — command handlers and the tick loop alike — goes through
// g.mu, so a tick's update pipeline is never interleaved with a command.
type Game struct {
	mu          sync.RWMutex
	players     map[string]*Player     // connection handle -> player
	clients     map[string]Broadcaster // connection handle -> transport
	troops      []Troop
	projectiles []Projectile

	nextPlayerID     int64
	nextTroopID      int64
	nextProjectileID int64

	running bool
	stop    chan struct{}

	analytics *Analytics // optional telemetry sink, may be nil
}

// NewGame creates an empty battlefield
func NewGame(analytics *Analytics) *Game {
	return &Game{
		players:   make(map[string]*Player),
		clients:   make(map[string]Broadcaster),
		stop:      make(chan struct{}),
		analytics: analytics,
	}
}

// Run drives the fixed-rate tick loop until Stop. Each iteration measures
// the wall-clock time since the previous one as dt, runs the update
// pipeline, and sleeps off whatever is left of the 1/30 s frame. Under
// load the loop falls behind rather than blocking to catch up.
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	last := time.Now()
	sampleT := 0.0
	for {
		start := time.Now()
		dt := start.Sub(last).Seconds()
		last = start

		g.step(dt)

		if g.analytics != nil {
			sampleT += dt
			if sampleT >= 1.0 {
				sampleT = 0
				fps := 0.0
				if dt > 0 {
					fps = 1 / dt
				}
				g.mu.RLock()
				g.analytics.RecordTick(fps, len(g.players), len(g.troops), len(g.projectiles))
				g.mu.RUnlock()
			}
		}

		wait := TickPeriod - time.Since(start)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-g.stop:
			return
		case <-time.After(wait):
		}
	}
}

// Stop terminates the tick loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// step runs one tick of the update pipeline: kinematics, combat,
// ballistics, reaping, then snapshot + diagnostics delivery.
func (g *Game) step(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.troops {
		g.troops[i].Update(dt)
	}

	g.resolveCombat(dt)

	for i := range g.projectiles {
		g.projectiles[i].Update(dt)
	}
	g.hitProjectiles()

	g.reap()

	g.broadcastSnapshot()
	g.broadcastDiagnostics(dt)
}

// reap drops dead troops and expired projectiles in place
func (g *Game) reap() {
	troops := g.troops[:0]
	for _, t := range g.troops {
		if t.Health > 0 {
			troops = append(troops, t)
		}
	}
	g.troops = troops

	projectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Life > 0 {
			projectiles = append(projectiles, p)
		}
	}
	g.projectiles = projectiles
}

// AddPlayer creates a player for the given connection handle, with a
// random spawn position and a random muted color
func (g *Game) AddPlayer(handle string) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextPlayerID++
	p := &Player{
		ID: g.nextPlayerID,
		X:  randRange(0, MapWidth),
		Y:  randRange(0, MapHeight),
		Color: [3]uint8{
			uint8(randRange(50, 200)),
			uint8(randRange(50, 200)),
			uint8(randRange(50, 200)),
		},
	}
	g.players[handle] = p
	return p
}

// RemovePlayer deletes the player for a connection handle along with
// every troop it owns. Unknown handles are a no-op.
func (g *Game) RemovePlayer(handle string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[handle]
	if !ok {
		return
	}
	delete(g.players, handle)
	delete(g.clients, handle)

	troops := g.troops[:0]
	for _, t := range g.troops {
		if t.OwnerID != p.ID {
			troops = append(troops, t)
		}
	}
	g.troops = troops
}

// SetClient associates a transport with a connection handle
func (g *Game) SetClient(handle string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[handle] = client
}

// PlayerCount returns the number of connected players
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.players)
}

// TroopCount returns the number of live troops
func (g *Game) TroopCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.troops)
}

// HandleSpawn processes a spawn command. Missing fields or an unknown
// sender degrade to a no-op.
func (g *Game) HandleSpawn(handle string, msg SpawnMsg) {
	if len(msg.Pos) != 2 || len(msg.Dir) != 2 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[handle]
	if !ok {
		return
	}

	count := msg.Count
	if count <= 0 {
		count = DefaultSpawnCount
	}
	ut, known := ParseUnitType(msg.Type)
	if !known {
		ut = RandomUnitType()
	}
	g.spawnTroops(p.ID, msg.Pos[0], msg.Pos[1], msg.Dir[0], msg.Dir[1], count, ut)
}

// spawnTroops creates a clustered batch of troops for a player. The
// caller must hold g.mu.
func (g *Game) spawnTroops(ownerID int64, x, y, dirX, dirY float64, count int, ut UnitType) {
	dirX, dirY = Normalize(dirX, dirY)

	for n := 0; n < count; n++ {
		if len(g.troops) >= MaxTroops {
			return
		}
		tx := WrapCoord(x+randNorm(0, 20), MapWidth)
		ty := WrapCoord(y+randNorm(0, 20), MapHeight)
		tdx, tdy := Normalize(dirX+randNorm(0, 0.1), dirY+randNorm(0, 0.1))

		g.nextTroopID++
		g.troops = append(g.troops, NewTroop(g.nextTroopID, ownerID, tx, ty, tdx, tdy, ut))
	}
}

// HandleMove reorients the listed troops toward a target position along
// the shorter toroidal path. Troops not owned by the sender, unknown
// ids, and a zero-distance target are silently skipped.
func (g *Game) HandleMove(handle string, msg MoveMsg) {
	if len(msg.IDs) == 0 || len(msg.Target) != 2 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[handle]
	if !ok {
		return
	}

	wanted := make(map[int64]bool, len(msg.IDs))
	for _, id := range msg.IDs {
		wanted[id] = true
	}

	for i := range g.troops {
		t := &g.troops[i]
		if t.OwnerID != p.ID || !wanted[t.ID] {
			continue
		}
		dx := WrapDelta(msg.Target[0], t.X, MapWidth)
		dy := WrapDelta(msg.Target[1], t.Y, MapHeight)
		if dx == 0 && dy == 0 {
			continue
		}
		t.DirX, t.DirY = Normalize(dx, dy)
	}
}

// buildSnapshot assembles the full-state snapshot. Caller must hold g.mu.
func (g *Game) buildSnapshot() Snapshot {
	snap := Snapshot{
		Players:     make([]PlayerState, 0, len(g.players)),
		Troops:      make([]TroopState, 0, len(g.troops)),
		Projectiles: make([]ProjectileState, 0, len(g.projectiles)),
		Map:         [2]float64{MapWidth, MapHeight},
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, p.ToState())
	}
	for i := range g.troops {
		snap.Troops = append(snap.Troops, g.troops[i].ToState())
	}
	for i := range g.projectiles {
		snap.Projectiles = append(snap.Projectiles, g.projectiles[i].ToState())
	}
	return snap
}

// broadcastSnapshot sends the msgpack-encoded snapshot to every client.
// Delivery is fire-and-forget; slow clients drop frames.
func (g *Game) broadcastSnapshot() {
	data, err := msgpack.Marshal(g.buildSnapshot())
	if err != nil {
		return
	}
	for _, client := range g.clients {
		client.SendBinary(data)
	}
}

// broadcastDiagnostics sends the per-tick loop stats as a JSON envelope
func (g *Game) broadcastDiagnostics(dt float64) {
	fps := 0.0
	if dt > 0 {
		fps = 1 / dt
	}
	byPlayer := make(map[int64]int, len(g.players))
	for _, p := range g.players {
		byPlayer[p.ID] = 0
	}
	for i := range g.troops {
		byPlayer[g.troops[i].OwnerID]++
	}
	diag := DiagMsg{
		FPS:            round1(fps),
		PlayerCount:    len(g.players),
		TroopCount:     len(g.troops),
		TroopsByPlayer: byPlayer,
	}
	for _, client := range g.clients {
		client.SendJSON(Envelope{T: MsgDiag, Data: diag})
	}
}
