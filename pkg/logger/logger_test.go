package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewFallsBackToInfoLevel(t *testing.T) {
	l := New(Config{Level: "not-a-level"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNewJSONFormat(t *testing.T) {
	l := New(Config{Level: "debug", Format: JSONFormat})
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestLogJobResultCarriesTallies(t *testing.T) {
	Init()
	var buf bytes.Buffer
	prev := instance
	instance = New(Config{Level: "info", Format: JSONFormat})
	instance.SetOutput(&buf)
	defer func() { instance = prev }()

	LogJobResult("backfill", map[string]int{"updated": 7, "errored": 1})

	out := buf.String()
	assert.Contains(t, out, `"job":"backfill"`)
	assert.Contains(t, out, `"updated":7`)
	assert.Contains(t, out, `"errored":1`)
	assert.Contains(t, out, "job finished")
}
