package main

import (
	"crypto/rand"
	"encoding/hex"
	"math"
)

// WrapCoord maps v into [0, size) on the toroidal axis
func WrapCoord(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// WrapDelta returns the signed difference a-b along a toroidal axis,
// always taking the shorter of the direct or wrap-around path
func WrapDelta(a, b, size float64) float64 {
	d := a - b
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// WrapDistance returns the toroidal euclidean distance between two points
func WrapDistance(x1, y1, x2, y2, w, h float64) float64 {
	dx := WrapDelta(x1, x2, w)
	dy := WrapDelta(y1, y2, h)
	return math.Hypot(dx, dy)
}

// Normalize scales (x,y) to unit length. A zero vector is returned unchanged
// rather than dividing by zero.
func Normalize(x, y float64) (float64, float64) {
	n := math.Hypot(x, y)
	if n == 0 {
		return x, y
	}
	return x / n, y / n
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GenerateID returns a random hex string of the given byte length
func GenerateID(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// randFloat returns a random float64 in [0, 1) using a crypto-seeded
// xorshift. Fast enough to call per troop per spawn.
var randSrc uint64

func randFloat() float64 {
	randSrc ^= randSrc << 13
	randSrc ^= randSrc >> 7
	randSrc ^= randSrc << 17
	if randSrc == 0 {
		randSrc = 1
	}
	return float64(randSrc%10000) / 10000.0
}

// randRange returns a random float64 in [min, max)
func randRange(min, max float64) float64 {
	return min + randFloat()*(max-min)
}

// randNorm returns a Gaussian sample via Box-Muller on top of randFloat
func randNorm(mean, stddev float64) float64 {
	u1 := randFloat()
	if u1 < 1e-9 {
		u1 = 1e-9
	}
	u2 := randFloat()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}

func init() {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	for i, v := range b {
		randSrc |= uint64(v) << (uint(i) * 8)
	}
	if randSrc == 0 {
		randSrc = 1
	}
}
