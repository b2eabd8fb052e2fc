package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/coulomb/internal/core/observability/log"
)

func TestRunPrintsNetForce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	require.NoError(t, run(&out, log.NewWithCore(core, log.LevelInfo)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "physics.Vector{Magnitude:0.69076904"), lines[0])
	assert.Contains(t, lines[0], "Angle:-2.88903837")

	deg, err := strconv.ParseFloat(lines[1], 64)
	require.NoError(t, err)
	assert.InDelta(t, -165.5297, deg, 1e-4)

	assert.Equal(t, 1, logs.FilterMessage("net force computed").Len())
}
