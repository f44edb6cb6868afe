package overlay

import (
	"errors"
	"fmt"
	"go.uber.org/zap"
	"sync"
)

// CurrentLayerKey is the settings key holding the id of the last active layer.
const CurrentLayerKey = "CurrentLayerID"

var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// DefaultExportPaths are searched, in order, for a keymap export on startup.
var DefaultExportPaths = []string{"keymap.json", "../keymap.json"}

// Store owns the known layers and which one is active. It is safe for use
// from several goroutines; every switch is applied under one lock, so
// readers see either the old or the new layer.
type Store struct {
	lock      sync.RWMutex
	available []Layer
	current   *Layer

	// held from a change of current until it is persisted and announced
	updateLock sync.Mutex

	initOnce    sync.Once
	exportPaths []string

	subsLock sync.Mutex
	subs     map[int]chan Change
	nextSub  int

	exports  ExportReader
	settings SettingsStore
	parse    ParseFunc
	log      *zap.SugaredLogger
}

type StoreOption func(*Store)

func WithExportPaths(paths ...string) StoreOption {
	return func(s *Store) {
		s.exportPaths = paths
	}
}

func NewStore(
	exports ExportReader,
	settings SettingsStore,
	parse ParseFunc,
	log *zap.SugaredLogger,
	opts ...StoreOption,
) *Store {
	s := &Store{
		exportPaths: DefaultExportPaths,
		subs:        make(map[int]chan Change),
		exports:     exports,
		settings:    settings,
		parse:       parse,
		log:         log,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Init loads the layers and restores the last active one. Only the first
// call has any effect.
func (s *Store) Init() {
	s.initOnce.Do(s.init)
}

func (s *Store) init() {
	if !s.loadExport() {
		defaults := DefaultLayers()
		s.lock.Lock()
		s.available = defaults
		s.lock.Unlock()
		s.log.Debugw("using default layers", "count", len(defaults))
	}

	s.restoreCurrent()
}

func (s *Store) loadExport() bool {
	if s.exports == nil {
		return false
	}

	data, found, err := s.exports.ReadBytes(s.exportPaths)
	if err != nil {
		s.log.Warnw("read keymap export", "error", fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err))
		return false
	}
	if !found {
		return false
	}

	// a stored layer id is restored afterwards, so it must not be overwritten
	if err := s.replaceLayers(data, false); err != nil {
		s.log.Warnw("load keymap export", "error", err)
		return false
	}

	return true
}

func (s *Store) restoreCurrent() {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	id, found := s.savedLayerID()

	s.lock.Lock()
	idx := -1
	if found {
		idx = s.indexOf(id)
	}
	if idx < 0 && len(s.available) > 0 {
		idx = 0
	}
	if idx < 0 {
		s.lock.Unlock()
		return
	}
	layer := s.available[idx].clone()
	s.current = &layer
	s.lock.Unlock()

	s.log.Debugw("restored current layer", "id", layer.ID)
	s.notify()
}

func (s *Store) savedLayerID() (string, bool) {
	if s.settings == nil {
		return "", false
	}

	id, found, err := s.settings.GetString(CurrentLayerKey)
	if err != nil {
		s.log.Debugw("get current layer id", "error", fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err))
		return "", false
	}

	return id, found
}

// Layers returns a copy of the available layers in navigation order.
func (s *Store) Layers() []Layer {
	s.lock.RLock()
	defer s.lock.RUnlock()

	out := make([]Layer, 0, len(s.available))
	for _, l := range s.available {
		out = append(out, l.clone())
	}
	return out
}

func (s *Store) Current() (Layer, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.current == nil {
		return Layer{}, false
	}
	return s.current.clone(), true
}

// CurrentIndex returns the index of the current layer within the available
// layers, or -1 if it is not one of them.
func (s *Store) CurrentIndex() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.current == nil {
		return -1
	}
	return s.indexOf(s.current.ID)
}

func (s *Store) LoadLayer(id string) (Layer, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Layer{}, false
	}
	return s.available[idx].clone(), true
}

// SetCurrentLayer makes layer current and remembers its id. The layer does
// not have to be one of the available layers.
func (s *Store) SetCurrentLayer(layer Layer) {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	layer = layer.clone()

	s.lock.Lock()
	s.current = &layer
	s.lock.Unlock()

	s.persist(layer.ID)
	s.notify()
}

// SwitchToLayer activates the layer at index. Indices outside the available
// layers are ignored.
func (s *Store) SwitchToLayer(index int) {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	s.lock.Lock()
	if index < 0 || index >= len(s.available) {
		s.lock.Unlock()
		s.log.Debugw("ignoring layer switch", "index", index)
		return
	}
	layer := s.available[index].clone()
	s.current = &layer
	s.lock.Unlock()

	s.persist(layer.ID)
	s.notify()
}

// SwitchToID activates the available layer with the given id and reports
// whether one was found.
func (s *Store) SwitchToID(id string) bool {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	s.lock.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.lock.Unlock()
		return false
	}
	layer := s.available[idx].clone()
	s.current = &layer
	s.lock.Unlock()

	s.persist(layer.ID)
	s.notify()
	return true
}

func (s *Store) Next() {
	s.step(1)
}

func (s *Store) Previous() {
	s.step(-1)
}

func (s *Store) step(delta int) {
	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	s.lock.Lock()
	n := len(s.available)
	if n == 0 {
		s.lock.Unlock()
		return
	}

	idx := 0
	if s.current != nil {
		if i := s.indexOf(s.current.ID); i >= 0 {
			idx = i
		}
	}
	idx = ((idx+delta)%n + n) % n

	layer := s.available[idx].clone()
	s.current = &layer
	s.lock.Unlock()

	s.persist(layer.ID)
	s.notify()
}

// Import replaces every layer with the ones parsed from an export and makes
// the first of them current. On error nothing changes.
func (s *Store) Import(data []byte) error {
	return s.replaceLayers(data, true)
}

func (s *Store) replaceLayers(data []byte, persist bool) error {
	layers, err := s.parse(data)
	if err != nil {
		return fmt.Errorf("parse export: %w", err)
	}

	available := make([]Layer, 0, len(layers))
	for _, l := range layers {
		available = append(available, l.clone())
	}

	s.updateLock.Lock()
	defer s.updateLock.Unlock()

	s.lock.Lock()
	s.available = available
	var first *Layer
	if len(available) > 0 {
		layer := available[0].clone()
		first = &layer
	}
	s.current = first
	s.lock.Unlock()

	s.log.Infow("imported layers", "count", len(available))

	if first != nil && persist {
		s.persist(first.ID)
	}
	s.notify()

	return nil
}

// Change is what subscribers receive. OK is false when no layer is current,
// after an import without layers.
type Change struct {
	Layer Layer
	OK    bool
}

// Subscribe returns a channel that receives the current layer after every
// change. Only the latest change is kept for slow readers. The returned
// function cancels the subscription and closes the channel.
func (s *Store) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 1)

	s.subsLock.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsLock.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsLock.Lock()
			delete(s.subs, id)
			s.subsLock.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// notify sends the layer that is current at the time of the call, so
// concurrent switches cannot leave a subscriber with an older layer.
func (s *Store) notify() {
	s.subsLock.Lock()
	defer s.subsLock.Unlock()

	layer, ok := s.Current()
	change := Change{Layer: layer, OK: ok}

	for _, ch := range s.subs {
		// drop a stale value nobody picked up yet
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- change:
		default:
		}
	}
}

func (s *Store) persist(id string) {
	if s.settings == nil {
		return
	}

	if err := s.settings.SetString(CurrentLayerKey, id); err != nil {
		s.log.Debugw("save current layer id", "error", fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err))
	}
}

// callers must hold the lock
func (s *Store) indexOf(id string) int {
	for i := range s.available {
		if s.available[i].ID == id {
			return i
		}
	}
	return -1
}
