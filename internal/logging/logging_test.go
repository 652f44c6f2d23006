package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown", String("file", "a.txt"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "file=a.txt")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf}).With(Int("tracks", 2))

	log.Debug(context.Background(), "built", Err(errors.New("boom")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "built", rec["msg"])
	assert.EqualValues(t, 2, rec["tracks"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNew_NilOutputDiscards(t *testing.T) {
	log := New(Config{})
	assert.NotPanics(t, func() { log.Error(context.Background(), "nowhere") })
}

func TestNoop(t *testing.T) {
	log := Noop().With(Any("k", 1))
	assert.NotPanics(t, func() {
		log.Debug(context.Background(), "x")
		log.Info(context.Background(), "x")
		log.Warn(context.Background(), "x")
		log.Error(context.Background(), "x")
	})
}
