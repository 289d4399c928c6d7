package utils

import (
	"fmt"
	"net"
	"time"
)

// PingPrinter checks if a printer is reachable at host:port over TCP.
func PingPrinter(host string, port int, timeout time.Duration) error {
	address := net.JoinHostPort(host, fmt.Sprintf("%d", port))

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
