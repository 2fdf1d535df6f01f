package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/digest"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of rendered pages after which Chrome is
// restarted. The browser only serves fallback loads, so it is recycled less
// eagerly than a crawler would need.
const DefaultMaxPages = 50

// instance is one running Chrome process.
type instance struct {
	browser *rod.Browser
	pid     int
	kill    func() error
}

// BrowserManager owns the headless Chrome process behind Fetcher. Chrome is
// launched on the first Acquire and restarted once MaxPages pages have been
// rendered and no page is open, so a long-running serve process does not
// keep growing Chrome's resident memory.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *instance
	active   int
	served   int
	maxPages int
	closed   bool
	launch   func() (*instance, error)
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages before the browser is recycled.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager returns a manager that has not started Chrome yet.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) *BrowserManager {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		launch:   launchChrome,
	}
	for _, opt := range opts {
		opt(bm)
	}
	return bm
}

// Acquire returns the browser for one page load, launching or recycling
// Chrome as needed. Every successful Acquire must be paired with Release.
func (bm *BrowserManager) Acquire() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, digest.Errorf(digest.EINVALID, "browser is closed")
	}

	if bm.current != nil && bm.active == 0 && bm.served >= bm.maxPages {
		bm.recycle()
	}

	if bm.current == nil {
		in, err := bm.launch()
		if err != nil {
			return nil, err
		}
		bm.current = in
		bm.served = 0
	}

	bm.active++
	return bm.current.browser, nil
}

// Release marks a page acquired with Acquire as done.
func (bm *BrowserManager) Release() {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.active > 0 {
		bm.active--
	}
	bm.served++
}

// Launched reports whether Chrome is running.
func (bm *BrowserManager) Launched() bool {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.current != nil
}

// LauncherPID returns the process ID of the browser launcher, or 0 if
// Chrome is not running.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.current == nil {
		return 0
	}
	return bm.current.pid
}

// Close stops Chrome. Close is safe to call multiple times; Acquire fails
// afterwards.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	if bm.current == nil {
		return nil
	}
	err := bm.current.kill()
	bm.current = nil
	return err
}

// recycle replaces the running browser. If the new launch fails the old
// browser keeps serving. Must be called with mu held.
func (bm *BrowserManager) recycle() {
	next, err := bm.launch()
	if err != nil {
		return
	}
	_ = bm.current.kill()
	bm.current = next
	bm.served = 0
}

// launchChrome starts headless Chrome with flags that keep a long-lived
// background instance stable.
func launchChrome() (*instance, error) {
	l := launcher.New().
		Set("mute-audio").
		Set("autoplay-policy", "user-gesture-required").
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &instance{
		browser: browser,
		pid:     l.PID(),
		kill: func() error {
			err := browser.Close()
			l.Kill()
			return err
		},
	}, nil
}
