package cluster

// Connections describes how a cluster is reached over the network: the
// security groups guarding it and, when known, the port to dial by default.
type Connections struct {
	securityGroupIDs []string
	defaultPort      *int32
}

// NewConnections creates a Connections descriptor with a default port.
func NewConnections(securityGroupIDs []string, defaultPort int32) *Connections {
	port := defaultPort
	return &Connections{securityGroupIDs: securityGroupIDs, defaultPort: &port}
}

// NewConnectionsWithoutPort creates a Connections descriptor for a cluster
// whose port is not known, e.g. one imported from partial attributes.
func NewConnectionsWithoutPort(securityGroupIDs []string) *Connections {
	return &Connections{securityGroupIDs: securityGroupIDs}
}

// SecurityGroupIDs returns the security groups guarding the cluster.
func (c *Connections) SecurityGroupIDs() []string {
	return c.securityGroupIDs
}

// DefaultPort returns the default port and whether one is bound.
func (c *Connections) DefaultPort() (int32, bool) {
	if c.defaultPort == nil {
		return 0, false
	}
	return *c.defaultPort, true
}
