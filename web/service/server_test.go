package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerStatus(t *testing.T) {
	setup()
	defer teardown()

	serverService := ServerService{}

	first := serverService.GetStatus(nil)
	require.NotNil(t, first)
	assert.False(t, first.T.IsZero())
	// Without a previous snapshot there is nothing to derive throughput from.
	assert.Zero(t, first.NetIO.Up)
	assert.Zero(t, first.NetIO.Down)

	time.Sleep(10 * time.Millisecond)

	second := serverService.GetStatus(first)
	require.NotNil(t, second)
	assert.True(t, second.T.After(first.T))
	// Interface byte counters only ever grow between two snapshots.
	assert.GreaterOrEqual(t, second.NetTraffic.Sent, first.NetTraffic.Sent)
	assert.GreaterOrEqual(t, second.NetTraffic.Recv, first.NetTraffic.Recv)
}

func TestServerLogs(t *testing.T) {
	setup()
	defer teardown()

	serverService := ServerService{}
	logs := serverService.GetLogs(5, "DEBUG")
	assert.LessOrEqual(t, len(logs), 5)
}
