package objectid

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const counterMask = 1<<24 - 1

// generator holds the per-process state behind New. Only the counter and the
// last good timestamp change after construction.
type generator struct {
	fingerprint [5]byte
	counter     atomic.Uint32
	lastSeconds atomic.Uint32
	now         func() time.Time
}

// process is created on first use and lives for the life of the process.
var process = sync.OnceValue(func() *generator {
	return newGenerator(time.Now, rand.Reader)
})

// newGenerator seeds a generator from entropy. A short read leaves the
// remaining bytes zero; generation still proceeds.
func newGenerator(now func() time.Time, entropy io.Reader) *generator {
	g := &generator{now: now}

	var seed [9]byte
	_, _ = io.ReadFull(entropy, seed[:])
	copy(g.fingerprint[:], seed[0:5])
	g.counter.Store(binary.BigEndian.Uint32(seed[5:9]) & counterMask)

	if s, ok := g.readClock(); ok {
		g.lastSeconds.Store(s)
	}
	return g
}

// New returns a new ObjectID. It never fails.
func New() ID {
	return process().next()
}

// NewString returns a new ObjectID in its canonical hex form.
func NewString() string {
	return New().Hex()
}

func (g *generator) next() ID {
	var id ID
	binary.BigEndian.PutUint32(id[0:4], g.seconds())
	copy(id[4:9], g.fingerprint[:])

	c := g.counter.Add(1) & counterMask
	id[9] = byte(c >> 16)
	id[10] = byte(c >> 8)
	id[11] = byte(c)
	return id
}

// seconds returns the current clock reading, or the last good one when the
// clock reports a time that does not fit in 32 unsigned bits.
func (g *generator) seconds() uint32 {
	s, ok := g.readClock()
	if !ok {
		return g.lastSeconds.Load()
	}
	g.lastSeconds.Store(s)
	return s
}

func (g *generator) readClock() (uint32, bool) {
	unix := g.now().Unix()
	if unix < 0 || unix > math.MaxUint32 {
		return 0, false
	}
	return uint32(unix), true
}
