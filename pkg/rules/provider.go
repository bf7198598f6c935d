package rules

import (
	"fmt"
	"sync"

	"gopkg.in/fsnotify.v1"
)

// Provider serves the current rule configuration snapshot and can watch
// the backing file for changes. Snapshots are immutable: a reload swaps
// the pointer, so computations in flight keep the snapshot they started
// with.
type Provider struct {
	mu       sync.RWMutex
	current  *Config
	path     string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onReload func(*Config, error)
}

// NewProvider creates a provider serving the given snapshot.
func NewProvider(cfg *Config) *Provider {
	return &Provider{current: cfg}
}

// NewProviderFromFile creates a provider backed by a YAML configuration
// file.
func NewProviderFromFile(path string) (*Provider, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Provider{current: cfg, path: path}, nil
}

// Config returns the current immutable snapshot.
func (p *Provider) Config() *Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reload re-reads the backing file and swaps in the new snapshot. The old
// snapshot stays valid for callers still holding it.
func (p *Provider) Reload() error {
	if p.path == "" {
		return fmt.Errorf("no configuration file to reload")
	}
	cfg, err := LoadConfig(p.path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.current = cfg
	p.mu.Unlock()
	return nil
}

// SetOnReload sets a callback invoked after each watch-triggered reload
// attempt with the new snapshot, or with the error when the file could
// not be parsed (the previous snapshot stays in place).
func (p *Provider) SetOnReload(fn func(*Config, error)) {
	p.onReload = fn
}

// Watch starts watching the backing file for changes, reloading on write
// or create. A reload failure keeps the previous snapshot.
func (p *Provider) Watch() error {
	if p.path == "" {
		return fmt.Errorf("no configuration file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	p.watcher = watcher
	p.stopChan = make(chan struct{})

	go p.watchLoop()

	if err := watcher.Add(p.path); err != nil {
		p.watcher.Close()
		return fmt.Errorf("watching %s: %w", p.path, err)
	}

	return nil
}

// watchLoop handles file system events until StopWatch is called.
func (p *Provider) watchLoop() {
	for {
		select {
		case <-p.stopChan:
			return

		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			err := p.Reload()
			if p.onReload != nil {
				p.onReload(p.Config(), err)
			}

		case _, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// StopWatch stops watching the backing file.
func (p *Provider) StopWatch() {
	if p.stopChan != nil {
		close(p.stopChan)
	}
	if p.watcher != nil {
		p.watcher.Close()
	}
}
