package cluster

import (
	"fmt"
	"net"
	"strconv"
)

// Endpoint is an immutable (hostname, port) pair identifying a
// network-reachable service instance.
type Endpoint struct {
	hostname string
	port     int32
}

// NewEndpoint creates an Endpoint for the given hostname and port.
func NewEndpoint(hostname string, port int32) Endpoint {
	return Endpoint{hostname: hostname, port: port}
}

// Hostname returns the endpoint's hostname.
func (e Endpoint) Hostname() string {
	return e.hostname
}

// Port returns the endpoint's port.
func (e Endpoint) Port() int32 {
	return e.port
}

// SocketAddress returns the endpoint in host:port form.
func (e Endpoint) SocketAddress() string {
	return net.JoinHostPort(e.hostname, strconv.Itoa(int(e.port)))
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	return fmt.Sprintf("Endpoint(%s)", e.SocketAddress())
}
