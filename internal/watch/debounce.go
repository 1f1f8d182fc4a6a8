// Package watch re-runs detection when the target document changes on
// disk. Editors often fire several writes per save, so rescans are
// debounced: only the last event of a burst schedules work.
package watch

import (
	"sync"
	"time"
)

// DefaultQuiescence は再スキャンまでに要求する無変更時間。
const DefaultQuiescence = time.Second

// Debouncer は1本のタイマーを持ち、Trigger のたびに張り直します。
// 保留中のタイマーは置き換えるだけで、実行中の fn は中断しません。
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	d     time.Duration
	fn    func()
}

// NewDebouncer returns a debouncer that runs fn once d has elapsed
// with no further triggers. A non-positive d falls back to
// DefaultQuiescence.
func NewDebouncer(d time.Duration, fn func()) *Debouncer {
	if d <= 0 {
		d = DefaultQuiescence
	}
	return &Debouncer{d: d, fn: fn}
}

// Trigger cancels any pending run and schedules a fresh one.
func (b *Debouncer) Trigger() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, b.fn)
}

// Stop cancels the pending run, if any. It does not wait for an
// already started fn.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
