package overlay

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeExports struct {
	data  []byte
	found bool
	err   error
	asked []string
}

func (f *fakeExports) ReadBytes(candidates []string) ([]byte, bool, error) {
	f.asked = candidates
	return f.data, f.found, f.err
}

type fakeSettings struct {
	lock   sync.Mutex
	values map[string]string
	err    error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string]string)}
}

func (f *fakeSettings) GetString(key string) (string, bool, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeSettings) SetString(key, value string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

var errBadExport = errors.New("bad export")

// fakeParse understands "id1,id2,..." and rejects anything starting with "!"
func fakeParse(data []byte) ([]Layer, error) {
	s := string(data)
	if strings.HasPrefix(s, "!") {
		return nil, errBadExport
	}
	if s == "" {
		return []Layer{}, nil
	}

	var layers []Layer
	for _, id := range strings.Split(s, ",") {
		layers = append(layers, Layer{
			ID:     id,
			Title:  strings.ToUpper(id),
			Layout: []KeyLabel{{Row: 0, Column: 0, Text: id}},
		})
	}
	return layers, nil
}

func newTestStore(t *testing.T, exports ExportReader, settings SettingsStore) *Store {
	t.Helper()
	s := NewStore(exports, settings, fakeParse, zap.NewNop().Sugar())
	s.Init()
	return s
}

func ids(layers []Layer) []string {
	out := make([]string, 0, len(layers))
	for _, l := range layers {
		out = append(out, l.ID)
	}
	return out
}

func currentID(t *testing.T, s *Store) string {
	t.Helper()
	layer, ok := s.Current()
	require.True(t, ok)
	return layer.ID
}

func TestInitDefaults(t *testing.T) {
	s := newTestStore(t, &fakeExports{}, newFakeSettings())

	assert.Equal(t, []string{"base", "symbols", "numbers", "function", "navigation"}, ids(s.Layers()))
	assert.Equal(t, "base", currentID(t, s))

	for _, l := range s.Layers() {
		assert.False(t, l.HasLayout(), "layer %s", l.ID)
		assert.Equal(t, "layer_"+l.ID, l.ImageName)
	}
}

func TestLoadLayer(t *testing.T) {
	s := newTestStore(t, nil, nil)

	base, ok := s.LoadLayer("base")
	require.True(t, ok)
	assert.Equal(t, "Base Layer", base.Title)

	_, ok = s.LoadLayer("nonexistent")
	assert.False(t, ok)
}

func TestInitSearchesExportPaths(t *testing.T) {
	exports := &fakeExports{}
	s := NewStore(exports, nil, fakeParse, zap.NewNop().Sugar(), WithExportPaths("a.json", "b.json"))
	s.Init()

	assert.Equal(t, []string{"a.json", "b.json"}, exports.asked)
}

func TestInitFromExport(t *testing.T) {
	settings := newFakeSettings()
	s := newTestStore(t, &fakeExports{data: []byte("one,two,three"), found: true}, settings)

	assert.Equal(t, []string{"one", "two", "three"}, ids(s.Layers()))
	assert.Equal(t, "one", currentID(t, s))
}

func TestInitRestoresSavedLayer(t *testing.T) {
	settings := newFakeSettings()
	settings.values[CurrentLayerKey] = "two"

	s := newTestStore(t, &fakeExports{data: []byte("one,two,three"), found: true}, settings)
	assert.Equal(t, "two", currentID(t, s))
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, "two", settings.values[CurrentLayerKey])
}

func TestInitRestoresSavedDefaultLayer(t *testing.T) {
	settings := newFakeSettings()
	settings.values[CurrentLayerKey] = "numbers"

	s := newTestStore(t, &fakeExports{}, settings)
	assert.Equal(t, "numbers", currentID(t, s))
}

func TestInitFallsBackWhenSavedLayerIsGone(t *testing.T) {
	settings := newFakeSettings()
	settings.values[CurrentLayerKey] = "oryx_layer_9"

	s := newTestStore(t, &fakeExports{}, settings)
	assert.Equal(t, "base", currentID(t, s))
}

func TestInitRecoversFromFailures(t *testing.T) {
	tests := []struct {
		name     string
		exports  *fakeExports
		settings *fakeSettings
	}{
		{"export read error", &fakeExports{err: errors.New("permission denied")}, newFakeSettings()},
		{"bad export", &fakeExports{data: []byte("!nope"), found: true}, newFakeSettings()},
		{"settings broken", &fakeExports{}, &fakeSettings{err: errors.New("disk gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, tt.exports, tt.settings)
			assert.Len(t, s.Layers(), 5)
			assert.Equal(t, "base", currentID(t, s))
		})
	}
}

func TestInitEmptyExport(t *testing.T) {
	s := newTestStore(t, &fakeExports{data: []byte(""), found: true}, newFakeSettings())

	assert.Empty(t, s.Layers())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, -1, s.CurrentIndex())
}

func TestInitOnce(t *testing.T) {
	exports := &fakeExports{data: []byte("one,two"), found: true}
	s := newTestStore(t, exports, newFakeSettings())
	s.SwitchToLayer(1)

	exports.data = []byte("three")
	s.Init()

	assert.Equal(t, []string{"one", "two"}, ids(s.Layers()))
	assert.Equal(t, "two", currentID(t, s))
}

func TestSetCurrentLayer(t *testing.T) {
	settings := newFakeSettings()
	s := newTestStore(t, nil, settings)

	s.SetCurrentLayer(Layer{ID: "test", Title: "Test Layer"})

	layer, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "test", layer.ID)
	assert.Equal(t, "Test Layer", layer.Title)
	assert.Equal(t, "test", settings.values[CurrentLayerKey])
	assert.Equal(t, -1, s.CurrentIndex())
}

func TestSetCurrentLayerIgnoresPersistenceErrors(t *testing.T) {
	settings := &fakeSettings{values: map[string]string{}, err: errors.New("read-only")}
	s := newTestStore(t, nil, settings)

	s.SetCurrentLayer(Layer{ID: "symbols", Title: "Symbols"})
	assert.Equal(t, "symbols", currentID(t, s))
}

func TestSwitchToLayer(t *testing.T) {
	settings := newFakeSettings()
	s := newTestStore(t, nil, settings)

	s.SwitchToLayer(1)
	assert.Equal(t, "symbols", currentID(t, s))
	assert.Equal(t, "symbols", settings.values[CurrentLayerKey])

	for _, idx := range []int{5, 999, -1} {
		s.SwitchToLayer(idx)
		assert.Equal(t, "symbols", currentID(t, s), "index %d", idx)
	}
}

func TestSwitchToID(t *testing.T) {
	s := newTestStore(t, nil, nil)

	assert.True(t, s.SwitchToID("function"))
	assert.Equal(t, "function", currentID(t, s))

	assert.False(t, s.SwitchToID("nonexistent"))
	assert.Equal(t, "function", currentID(t, s))
}

func TestNextPrevious(t *testing.T) {
	s := newTestStore(t, nil, nil)

	s.Previous()
	assert.Equal(t, "navigation", currentID(t, s))

	s.Next()
	assert.Equal(t, "base", currentID(t, s))

	s.Next()
	assert.Equal(t, "symbols", currentID(t, s))

	s.SetCurrentLayer(Layer{ID: "elsewhere"})
	s.Next()
	assert.Equal(t, "symbols", currentID(t, s))
}

func TestNextOnEmptyStore(t *testing.T) {
	s := newTestStore(t, &fakeExports{data: []byte(""), found: true}, nil)

	s.Next()
	s.Previous()
	s.SwitchToLayer(0)

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestImport(t *testing.T) {
	settings := newFakeSettings()
	s := newTestStore(t, nil, settings)
	s.SwitchToLayer(2)

	require.NoError(t, s.Import([]byte("x,y")))
	assert.Equal(t, []string{"x", "y"}, ids(s.Layers()))
	assert.Equal(t, "x", currentID(t, s))
	assert.Equal(t, "x", settings.values[CurrentLayerKey])
}

func TestFailedImportKeepsState(t *testing.T) {
	s := newTestStore(t, nil, nil)

	require.NoError(t, s.Import([]byte("x,y,z")))
	s.SwitchToLayer(2)
	before := s.Layers()

	err := s.Import([]byte("!broken"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadExport)

	assert.Equal(t, before, s.Layers())
	assert.Equal(t, "z", currentID(t, s))
}

func TestImportEmpty(t *testing.T) {
	s := newTestStore(t, nil, nil)

	require.NoError(t, s.Import([]byte("")))
	assert.Empty(t, s.Layers())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestReturnedLayersAreCopies(t *testing.T) {
	s := newTestStore(t, &fakeExports{data: []byte("one"), found: true}, nil)

	layers := s.Layers()
	layers[0].Layout[0].Text = "changed"
	layers[0].Title = "changed"

	layer, ok := s.LoadLayer("one")
	require.True(t, ok)
	assert.Equal(t, "ONE", layer.Title)
	assert.Equal(t, "one", layer.Layout[0].Text)
}

func TestSubscribe(t *testing.T) {
	s := newTestStore(t, nil, nil)

	ch, cancel := s.Subscribe()
	defer cancel()

	s.SwitchToLayer(1)
	s.SwitchToLayer(3)

	select {
	case change := <-ch:
		require.True(t, change.OK)
		assert.Equal(t, "function", change.Layer.ID)
	case <-time.After(time.Second):
		t.Fatal("no layer received")
	}

	select {
	case change := <-ch:
		t.Fatalf("unexpected extra layer %q", change.Layer.ID)
	default:
	}
}

func TestUnsubscribe(t *testing.T) {
	s := newTestStore(t, nil, nil)

	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	s.SwitchToLayer(1)

	_, open := <-ch
	assert.False(t, open)
}

func TestConcurrentSwitching(t *testing.T) {
	settings := newFakeSettings()
	s := newTestStore(t, nil, settings)
	ch, cancel := s.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				switch j % 3 {
				case 0:
					s.SwitchToLayer(i % 5)
				case 1:
					s.Next()
				default:
					_, _ = s.Current()
				}
			}
		}(i)
	}
	wg.Wait()

	current, ok := s.Current()
	require.True(t, ok)

	select {
	case change := <-ch:
		assert.Equal(t, current.ID, change.Layer.ID)
	case <-time.After(time.Second):
		t.Fatal("no layer received")
	}
	assert.Equal(t, current.ID, settings.values[CurrentLayerKey])
}

// slowSettings stalls the first write so a later switch overtakes it unless
// switches are serialized with their persistence.
type slowSettings struct {
	*fakeSettings
	delays chan time.Duration
}

func (s *slowSettings) SetString(key, value string) error {
	select {
	case d := <-s.delays:
		time.Sleep(d)
	default:
	}
	return s.fakeSettings.SetString(key, value)
}

func TestSavedLayerFollowsCurrentUnderSlowSettings(t *testing.T) {
	settings := &slowSettings{fakeSettings: newFakeSettings(), delays: make(chan time.Duration, 1)}
	s := newTestStore(t, nil, settings)
	settings.delays <- 100 * time.Millisecond

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.SwitchToLayer(1)
	}()
	go func() {
		defer wg.Done()
		time.Sleep(20 * time.Millisecond)
		s.SwitchToLayer(2)
	}()
	wg.Wait()

	current := currentID(t, s)
	assert.Equal(t, "numbers", current)

	saved, found, err := settings.GetString(CurrentLayerKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, current, saved)
}

func TestSubscribersSeeEmptyImport(t *testing.T) {
	s := newTestStore(t, nil, newFakeSettings())
	ch, cancel := s.Subscribe()
	defer cancel()

	require.NoError(t, s.Import([]byte("a,b")))
	select {
	case change := <-ch:
		require.True(t, change.OK)
		assert.Equal(t, "a", change.Layer.ID)
	case <-time.After(time.Second):
		t.Fatal("no layer received")
	}

	require.NoError(t, s.Import([]byte("")))
	_, ok := s.Current()
	assert.False(t, ok)

	select {
	case change := <-ch:
		assert.False(t, change.OK)
	case <-time.After(time.Second):
		t.Fatal("emptied store was not announced")
	}
}
