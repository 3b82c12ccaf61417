package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory allocated since some starting point,
// such that the cost of a given phase (e.g. sorting a large input) can be
// reported.
type PerfStats struct {
	startTime time.Time
	startMem  uint64
	startGc   uint32
}

// NewPerfStats starts recording from the current point in time.
func NewPerfStats() *PerfStats {
	var p PerfStats
	//
	p.Reset()
	//
	return &p
}

// Reset restarts recording from the current point in time.
func (p *PerfStats) Reset() {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	p.startTime, p.startMem, p.startGc = time.Now(), m.TotalAlloc, m.NumGC
}

// Log reports (at debug level) the time and memory consumed since recording
// started, and then restarts recording.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := (m.TotalAlloc - p.startMem) / 1024 / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds()
	//
	log.Debugf("%s took %0.3fs using %v Mb (%v GC events)", prefix, exectime, alloc, gcs)
	//
	p.Reset()
}
