package theme

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glabrego/timeline-cli/internal/storage"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("storage disabled") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("storage disabled") }

func TestController_InitializeDefaultsToSystem(t *testing.T) {
	c := NewController(storage.NewMemoryStore(), SchemeDark, zerolog.Nop())
	c.Initialize(context.Background())

	assert.Equal(t, Attributes{Mode: ModeSystem, Theme: SchemeDark}, c.Attributes())
}

func TestController_InitializeWarnsOnlyForUnknownStoredValue(t *testing.T) {
	for _, tc := range []struct {
		stored   string
		wantMode Mode
		wantWarn bool
	}{
		{stored: "system", wantMode: ModeSystem},
		{stored: "dark", wantMode: ModeDark},
		{stored: "sepia", wantMode: ModeSystem, wantWarn: true},
	} {
		t.Run(tc.stored, func(t *testing.T) {
			store := storage.NewMemoryStore()
			require.NoError(t, store.Set(context.Background(), StorageKey, tc.stored))
			var logs bytes.Buffer

			c := NewController(store, SchemeLight, zerolog.New(&logs))
			c.Initialize(context.Background())

			assert.Equal(t, tc.wantMode, c.Mode())
			assert.Equal(t, tc.wantWarn, bytes.Contains(logs.Bytes(), []byte("ignoring stored theme preference")))
		})
	}
}

func TestController_InitializeReadsStoredPreference(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), StorageKey, "light"))

	c := NewController(store, SchemeDark, zerolog.Nop())
	c.Initialize(context.Background())

	assert.Equal(t, ModeLight, c.Mode())
	assert.Equal(t, SchemeLight, c.Effective())
}

func TestController_CycleHasLengthThree(t *testing.T) {
	ctx := context.Background()
	for _, start := range []Mode{ModeSystem, ModeLight, ModeDark} {
		c := NewController(storage.NewMemoryStore(), SchemeLight, zerolog.Nop())
		c.Apply(ctx, start)
		before := c.Attributes()
		c.Cycle(ctx)
		c.Cycle(ctx)
		c.Cycle(ctx)
		assert.Equal(t, before, c.Attributes(), "start=%s", start)
	}
}

func TestController_CycleOrderAndPersistence(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	c := NewController(store, SchemeLight, zerolog.Nop())
	c.Initialize(ctx)

	assert.Equal(t, ModeLight, c.Cycle(ctx))
	v, ok, _ := store.Get(ctx, StorageKey)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	assert.Equal(t, ModeDark, c.Cycle(ctx))
	v, _, _ = store.Get(ctx, StorageKey)
	assert.Equal(t, "dark", v)
	assert.Equal(t, SchemeDark, c.Effective())

	assert.Equal(t, ModeSystem, c.Cycle(ctx))
	_, ok, _ = store.Get(ctx, StorageKey)
	assert.False(t, ok, "system preference must not be persisted")
}

func TestController_SystemSignal(t *testing.T) {
	ctx := context.Background()
	c := NewController(storage.NewMemoryStore(), SchemeLight, zerolog.Nop())
	c.Apply(ctx, ModeSystem)

	c.SystemChanged(ctx, SchemeDark)
	assert.Equal(t, SchemeDark, c.Effective())
	c.SystemChanged(ctx, SchemeLight)
	assert.Equal(t, SchemeLight, c.Effective())

	c.Apply(ctx, ModeDark)
	c.SystemChanged(ctx, SchemeLight)
	assert.Equal(t, SchemeDark, c.Effective())

	c.Apply(ctx, ModeLight)
	c.SystemChanged(ctx, SchemeDark)
	assert.Equal(t, SchemeLight, c.Effective())

	c.Apply(ctx, ModeSystem)
	assert.Equal(t, SchemeDark, c.Effective(), "system follows the last OS signal")
}

func TestController_StorageFailureDegradesToMemory(t *testing.T) {
	ctx := context.Background()
	c := NewController(failingStore{}, SchemeLight, zerolog.Nop())

	c.Initialize(ctx)
	assert.Equal(t, ModeSystem, c.Mode())

	c.Apply(ctx, ModeDark)
	assert.Equal(t, SchemeDark, c.Effective())
	_, isMemory := c.store.(*storage.MemoryStore)
	assert.True(t, isMemory)
}

func TestController_OnChange(t *testing.T) {
	c := NewController(nil, SchemeLight, zerolog.Nop())
	var seen []Attributes
	c.OnChange(func(a Attributes) { seen = append(seen, a) })

	c.Cycle(context.Background())
	require.Len(t, seen, 1)
	assert.Equal(t, Attributes{Mode: ModeLight, Theme: SchemeLight}, seen[0])
}

func TestController_PersistsThroughSQLite(t *testing.T) {
	ctx := context.Background()
	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "timeline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.Init(ctx))

	first := NewController(repo, SchemeLight, zerolog.Nop())
	first.Initialize(ctx)
	first.Apply(ctx, ModeDark)

	second := NewController(repo, SchemeLight, zerolog.Nop())
	second.Initialize(ctx)
	assert.Equal(t, ModeDark, second.Mode())
}

func TestParseMode(t *testing.T) {
	_, err := ParseMode("sepia")
	assert.Error(t, err)
	m, err := ParseMode("dark")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)
}
