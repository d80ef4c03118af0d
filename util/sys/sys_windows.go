//go:build windows
// +build windows

package sys

import (
	"errors"

	"github.com/shirou/gopsutil/v4/net"
)

// GetConnectionCount returns the number of active connections for the specified protocol ("tcp" or "udp").
func GetConnectionCount(proto string) (int, error) {
	if proto != "tcp" && proto != "udp" {
		return 0, errors.New("invalid protocol")
	}

	stats, err := net.Connections(proto)
	if err != nil {
		return 0, err
	}
	return len(stats), nil
}

// GetTCPCount returns the number of active TCP connections.
func GetTCPCount() (int, error) {
	return GetConnectionCount("tcp")
}

// GetUDPCount returns the number of active UDP connections.
func GetUDPCount() (int, error) {
	return GetConnectionCount("udp")
}
