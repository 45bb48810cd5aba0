package envconf

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T) *Record {
	t.Helper()

	src := MapSource{
		"STR":      "hello",
		"FLAG":     "true",
		"COUNT":    "-7",
		"BIG":      "9000000000",
		"SIZE":     "1048576",
		"RATIO":    "1.5",
		"TIMEOUT":  "2s",
		"STARTED":  "2026-01-02T15:04:05Z",
		"ENDPOINT": "https://example.com/v1",
		"BIND_IP":  "10.0.0.1",
		"TRACE_ID": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	}

	loader := NewSchema().
		String("STR", "str").
		Bool("FLAG", "flag").
		Int("COUNT", "count").
		Int64("BIG", "big").
		Uint64("SIZE", "size").
		Float64("RATIO", "ratio").
		Duration("TIMEOUT", "timeout").
		Time("STARTED", "started").
		URL("ENDPOINT", "endpoint").
		IP("BIND_IP", "bind_ip").
		UUID("TRACE_ID", "trace_id").
		MustCompile(WithSource(src))

	rec, err := loader.Load()
	require.NoError(t, err)
	return rec
}

func TestRecord_TypedAccessors(t *testing.T) {
	rec := testRecord(t)

	assert.Equal(t, "hello", rec.String("str"))
	assert.True(t, rec.Bool("flag"))
	assert.Equal(t, -7, rec.Int("count"))
	assert.Equal(t, int64(9000000000), rec.Int64("big"))
	assert.Equal(t, uint64(1048576), rec.Uint64("size"))
	assert.Equal(t, 1.5, rec.Float64("ratio"))
	assert.Equal(t, 2*time.Second, rec.Duration("timeout"))
	assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), rec.Time("started"))
	assert.Equal(t, "https://example.com/v1", rec.URL("endpoint").String())
	assert.True(t, net.ParseIP("10.0.0.1").Equal(rec.IP("bind_ip")))
	assert.Equal(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"), rec.UUID("trace_id"))
}

func TestRecord_Get(t *testing.T) {
	rec := testRecord(t)

	value, ok := rec.Get("str")
	assert.True(t, ok)
	assert.Equal(t, "hello", value)

	_, ok = rec.Get("nope")
	assert.False(t, ok)
}

func TestRecord_FieldsInDeclarationOrder(t *testing.T) {
	rec := testRecord(t)

	fields := rec.Fields()
	require.Equal(t, rec.Len(), len(fields))
	assert.Equal(t, "str", fields[0])
	assert.Equal(t, "trace_id", fields[len(fields)-1])
}

func TestRecord_AccessorPanicsOnUnknownField(t *testing.T) {
	rec := testRecord(t)

	assert.Panics(t, func() { rec.String("nope") })
}

func TestRecord_AccessorPanicsOnWrongType(t *testing.T) {
	rec := testRecord(t)

	assert.Panics(t, func() { rec.Int("str") })
}
