package skewgen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/record"
	"github.com/hupe1980/skewgen/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func testFields() []Field {
	return []Field{
		{Name: "id", Spec: sampler.Spec{Kind: sampler.KindUUID}},
		{Name: "first", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "names.csv", Field: "first", Skew: ptr(2)}},
		{Name: "user", Spec: sampler.Spec{Kind: sampler.KindKey, Size: 50}},
	}
}

func TestNew_RowOrder(t *testing.T) {
	gen, err := New(context.Background(), testFields(), WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "first", "user"}, gen.Fields())

	row, err := gen.Row()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "first", "user"}, row.Names())

	id, _ := row.Get("id")
	assert.Len(t, id.StringValue(), 36)

	first, _ := row.Get("first")
	assert.Equal(t, record.KindString, first.Kind)

	user, _ := row.Get("user")
	k, ok := user.AsInt64()
	require.True(t, ok)
	assert.GreaterOrEqual(t, k, int64(0))
	assert.Less(t, k, int64(50))
}

func TestNew_SeedReproducible(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testFields(), WithSeed(99))
	require.NoError(t, err)
	b, err := New(ctx, testFields(), WithSeed(99))
	require.NoError(t, err)

	for range 20 {
		ra, err := a.Row()
		require.NoError(t, err)
		rb, err := b.Row()
		require.NoError(t, err)
		assert.True(t, ra.Equal(rb))
	}
}

func TestNew_AppendingFieldKeepsEarlierColumns(t *testing.T) {
	ctx := context.Background()
	short, err := New(ctx, testFields()[:2], WithSeed(5))
	require.NoError(t, err)
	long, err := New(ctx, testFields(), WithSeed(5))
	require.NoError(t, err)

	for range 10 {
		rs, err := short.Row()
		require.NoError(t, err)
		rl, err := long.Row()
		require.NoError(t, err)
		assert.True(t, rs.Equal(rl[:2]))
	}
}

func TestNew_ConfigurationErrors(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, nil)
	require.ErrorIs(t, err, ErrNoFields)
	assert.True(t, IsConfigurationError(err))

	_, err = New(ctx, []Field{
		{Name: "a", Spec: sampler.Spec{Kind: sampler.KindUUID}},
		{Name: "a", Spec: sampler.Spec{Kind: sampler.KindUUID}},
	})
	var dup *ErrDuplicateField
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)
	assert.True(t, IsConfigurationError(err))

	_, err = New(ctx, []Field{{Name: "", Spec: sampler.Spec{Kind: sampler.KindUUID}}})
	assert.True(t, IsConfigurationError(err))

	_, err = New(ctx, []Field{
		{Name: "ok", Spec: sampler.Spec{Kind: sampler.KindUUID}},
		{Name: "bad", Spec: sampler.Spec{Kind: "nope"}},
	})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "bad", fe.Field)
	assert.True(t, IsConfigurationError(err))
}

func TestNew_MissingResourceIsIOError(t *testing.T) {
	store := blobstore.NewMemoryStore()

	_, err := New(context.Background(), []Field{
		{Name: "city", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "cities.tsv"}},
	}, WithResources(store))

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "city", fe.Field)

	var ioErr *sampler.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.False(t, IsConfigurationError(err))
}

func TestNew_CustomResources(t *testing.T) {
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "colors.csv", []byte("color\nred\n")))

	gen, err := New(context.Background(), []Field{
		{Name: "color", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "colors.csv", Field: "color"}},
	}, WithResources(store), WithLoadConcurrency(1))
	require.NoError(t, err)

	row, err := gen.Row()
	require.NoError(t, err)
	v, _ := row.Get("color")
	assert.Equal(t, "red", v.StringValue())

	s, ok := gen.Sampler("color")
	require.True(t, ok)
	assert.IsType(t, &sampler.CatalogSampler{}, s)

	_, ok = gen.Sampler("missing")
	assert.False(t, ok)
}

type failingSampler struct{}

func (failingSampler) Sample() (record.Value, error) { return record.Value{}, errors.New("boom") }

func TestRegistry_CustomKind(t *testing.T) {
	reg := sampler.NewRegistry()
	reg.Register("fail", func(context.Context, sampler.Spec, ...sampler.Option) (sampler.Sampler, error) {
		return failingSampler{}, nil
	})

	gen, err := New(context.Background(), []Field{{Name: "x", Spec: sampler.Spec{Kind: "fail"}}}, WithRegistry(reg))
	require.NoError(t, err)

	_, err = gen.Row()
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "x", fe.Field)
	assert.EqualError(t, err, `field "x": boom`)
}

func TestRun_EmitsN(t *testing.T) {
	gen, err := New(context.Background(), testFields(), WithSeed(1))
	require.NoError(t, err)

	var rows []record.Record
	err = gen.Run(context.Background(), 25, func(r record.Record) error {
		rows = append(rows, r)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, rows, 25)
}

func TestRun_StopsOnCallbackError(t *testing.T) {
	gen, err := New(context.Background(), testFields())
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0
	err = gen.Run(context.Background(), 10, func(record.Record) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, calls)
}

func TestRun_UnboundedUntilCancel(t *testing.T) {
	gen, err := New(context.Background(), testFields())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err = gen.Run(ctx, -1, func(record.Record) error {
		calls++
		if calls == 100 {
			cancel()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 100, calls)
}

func TestRun_RateLimited(t *testing.T) {
	gen, err := New(context.Background(), testFields(), WithRate(200, 1))
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, gen.Run(context.Background(), 11, func(record.Record) error { return nil }))
	// The first token is free; ten more at 200/s take about 50ms.
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestRun_CancelledBoundedRunReportsError(t *testing.T) {
	gen, err := New(context.Background(), testFields())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = gen.Run(ctx, 5, func(record.Record) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	gen, err := New(context.Background(), testFields(), WithMetricsCollector(mc))
	require.NoError(t, err)

	require.NoError(t, gen.Run(context.Background(), 5, func(record.Record) error { return nil }))
	_, err = gen.Row()
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.LoadCount)
	assert.Zero(t, stats.LoadErrors)
	assert.Equal(t, int64(6), stats.RowCount)
	assert.Zero(t, stats.RowErrors)
}

func TestMetricsCollector_LoadErrors(t *testing.T) {
	mc := &BasicMetricsCollector{}
	_, err := New(context.Background(), []Field{
		{Name: "bad", Spec: sampler.Spec{Kind: sampler.KindKey, Size: -1}},
	}, WithMetricsCollector(mc))
	require.Error(t, err)
	assert.Equal(t, int64(1), mc.GetStats().LoadErrors)
}

type countingStore struct {
	blobstore.BlobStore
	opens int
}

func (s *countingStore) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	s.opens++
	return s.BlobStore.Open(ctx, name)
}

func TestNew_SharedResourceReadOnce(t *testing.T) {
	mem := blobstore.NewMemoryStore()
	require.NoError(t, mem.Put(context.Background(), "people.csv", []byte("first,last\nAda,Lovelace\nAlan,Turing\n")))
	store := &countingStore{BlobStore: mem}

	_, err := New(context.Background(), []Field{
		{Name: "first", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "people.csv", Field: "first"}},
		{Name: "last", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "people.csv", Field: "last"}},
	}, WithResources(store), WithLoadConcurrency(1))
	require.NoError(t, err)
	assert.Equal(t, 1, store.opens)

	store.opens = 0
	_, err = New(context.Background(), []Field{
		{Name: "first", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "people.csv", Field: "first"}},
		{Name: "last", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "people.csv", Field: "last"}},
	}, WithResources(store), WithLoadConcurrency(1), WithResourceCache(-1))
	require.NoError(t, err)
	assert.Equal(t, 2, store.opens)
}

func TestLogger(t *testing.T) {
	l := NoopLogger()
	require.NotNil(t, l)
	l.WithField("x").WithCount(2).LogRow(context.Background(), 1, nil)

	var buf bytes.Buffer
	jl := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	jl.WithField("city").LogLoad(context.Background(), "city", "catalog", errors.New("boom"))
	assert.Contains(t, buf.String(), `"field":"city"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}
