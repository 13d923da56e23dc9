package main

import (
	"sync"
	"time"
)

// Event types for telemetry tracking
const (
	EvtConnect    = "connect"
	EvtDisconnect = "disconnect"
	EvtSpawn      = "spawn"
)

// AnalyticsEvent represents a single trackable event
type AnalyticsEvent struct {
	Type      string
	Handle    string
	Detail    string
	Timestamp time.Time
}

// TickSample is a once-per-second snapshot of simulation loop health
type TickSample struct {
	FPS         float64
	Players     int
	Troops      int
	Projectiles int
	Timestamp   time.Time
}

// Analytics persists telemetry with batched background writes. A nil
// *Analytics is valid and drops everything, so callers never have to
// check whether telemetry is enabled.
type Analytics struct {
	db      *DB
	events  chan AnalyticsEvent
	samples chan TickSample
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewAnalytics creates and starts the telemetry background writer
func NewAnalytics(db *DB) *Analytics {
	a := &Analytics{
		db:      db,
		events:  make(chan AnalyticsEvent, 1024),
		samples: make(chan TickSample, 64),
		stop:    make(chan struct{}),
	}
	a.wg.Add(1)
	go a.writer()
	return a
}

// Track enqueues an event for async persistence (non-blocking)
func (a *Analytics) Track(evtType, handle, detail string) {
	if a == nil {
		return
	}
	select {
	case a.events <- AnalyticsEvent{
		Type:      evtType,
		Handle:    handle,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}:
	default:
		// Channel full — drop event rather than blocking
	}
}

// RecordTick enqueues a loop health sample (non-blocking)
func (a *Analytics) RecordTick(fps float64, players, troops, projectiles int) {
	if a == nil {
		return
	}
	select {
	case a.samples <- TickSample{
		FPS:         fps,
		Players:     players,
		Troops:      troops,
		Projectiles: projectiles,
		Timestamp:   time.Now().UTC(),
	}:
	default:
	}
}

// Stop flushes pending telemetry and shuts down the writer
func (a *Analytics) Stop() {
	if a == nil {
		return
	}
	close(a.stop)
	a.wg.Wait()
}

// writer is the background goroutine that batches and writes telemetry
func (a *Analytics) writer() {
	defer a.wg.Done()

	events := make([]AnalyticsEvent, 0, 64)
	samples := make([]TickSample, 0, 64)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	flush := func() {
		if len(events) > 0 {
			if err := a.db.InsertEvents(events); err == nil {
				events = events[:0]
			}
		}
		if len(samples) > 0 {
			if err := a.db.InsertTicks(samples); err == nil {
				samples = samples[:0]
			}
		}
	}

	for {
		select {
		case evt := <-a.events:
			events = append(events, evt)
			if len(events) >= 50 {
				flush()
			}
		case s := <-a.samples:
			samples = append(samples, s)
			if len(samples) >= 50 {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-a.stop:
			// Drain whatever is queued, then final flush
			for {
				select {
				case evt := <-a.events:
					events = append(events, evt)
				case s := <-a.samples:
					samples = append(samples, s)
				default:
					flush()
					return
				}
			}
		}
	}
}
