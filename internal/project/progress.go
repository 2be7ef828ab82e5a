package project

import (
	"sync"
	"time"
)

// Progress is a point-in-time snapshot of a [CopyFilesBuildPhase]'s run,
// safe to read from a different goroutine than the one calling Run (a UI
// polling loop, typically).
type Progress struct {
	TotalItems     int
	ProcessedItems int
	SuccessItems   int
	SkippedItems   int
	StartTime      time.Time
	FinishTime     time.Time
	HasFinished    bool
}

func (p Progress) Pct() float64 {
	if p.TotalItems == 0 {
		return 0
	}

	return float64(p.ProcessedItems) / float64(p.TotalItems) * 100
}

type progressTracker struct {
	sync.RWMutex
	Progress
}

func (t *progressTracker) start(total int) {
	t.Lock()
	defer t.Unlock()

	t.Progress = Progress{TotalItems: total, StartTime: time.Now()}
}

func (t *progressTracker) recordSuccess() {
	t.Lock()
	defer t.Unlock()

	t.ProcessedItems++
	t.SuccessItems++
}

func (t *progressTracker) recordSkipped() {
	t.Lock()
	defer t.Unlock()

	t.ProcessedItems++
	t.SkippedItems++
}

func (t *progressTracker) recordSkippedN(n int) {
	t.Lock()
	defer t.Unlock()

	t.ProcessedItems += n
	t.SkippedItems += n
}

func (t *progressTracker) finish() {
	t.Lock()
	defer t.Unlock()

	t.HasFinished = true
	t.FinishTime = time.Now()
}

func (t *progressTracker) snapshot() Progress {
	t.RLock()
	defer t.RUnlock()

	return t.Progress
}
