// Package debounce coalesces bursts of work per key. Only the call scheduled
// last for a key inside its quiet period runs.
package debounce

import (
	"sync"
	"time"
)

type pending struct {
	timer *time.Timer
	fn    func()
	seq   uint64
}

type Debouncer[K comparable] struct {
	mu      sync.Mutex
	pending map[K]*pending
	seq     uint64
	stopped bool
	wg      sync.WaitGroup
}

func New[K comparable]() *Debouncer[K] {
	return &Debouncer[K]{pending: make(map[K]*pending)}
}

// Trigger schedules fn for key after delay, replacing any call already
// waiting for that key. It reports false once the debouncer is stopped.
func (d *Debouncer[K]) Trigger(key K, delay time.Duration, fn func()) bool {
	if fn == nil {
		return false
	}
	if delay < 0 {
		delay = 0
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return false
	}

	if p, ok := d.pending[key]; ok {
		if p.timer.Stop() {
			d.wg.Done()
		}
	}

	d.seq++
	seq := d.seq
	p := &pending{fn: fn, seq: seq}
	d.wg.Add(1)
	p.timer = time.AfterFunc(delay, func() { d.fire(key, seq) })
	d.pending[key] = p
	return true
}

func (d *Debouncer[K]) fire(key K, seq uint64) {
	defer d.wg.Done()

	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok || p.seq != seq {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	p.fn()
}

// Cancel drops the pending call for key without running it.
func (d *Debouncer[K]) Cancel(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pending[key]
	if !ok {
		return false
	}
	delete(d.pending, key)
	if p.timer.Stop() {
		d.wg.Done()
	}
	return true
}

func (d *Debouncer[K]) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Flush runs every pending call now on the calling goroutine.
func (d *Debouncer[K]) Flush() {
	d.mu.Lock()
	ready := d.drainLocked()
	d.mu.Unlock()

	for _, fn := range ready {
		fn()
	}
}

// drainLocked empties the pending set and returns its calls. A timer that
// already fired is still waiting on d.mu; once its entry is gone it returns
// without running, so its call is taken here too.
func (d *Debouncer[K]) drainLocked() []func() {
	ready := make([]func(), 0, len(d.pending))
	for k, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		ready = append(ready, p.fn)
		delete(d.pending, k)
	}
	return ready
}

// Stop cancels everything still pending, rejects further triggers and waits
// for callbacks already running.
func (d *Debouncer[K]) Stop() {
	d.mu.Lock()
	d.stopped = true
	for k, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, k)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
