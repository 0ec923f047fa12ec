package cluster

import "fmt"

// ImportedClusterAttributes are the externally known attributes of an
// existing cluster. Only the identifier is required; importing with partial
// attribute knowledge is legal until a missing capability is actually used.
type ImportedClusterAttributes struct {
	ClusterIdentifier      string
	ClusterEndpointAddress string
	ReaderEndpointAddress  string
	Port                   int32
	SecurityGroupIDs       []string
}

// ImportedCluster presents the DatabaseCluster capability surface for a
// cluster this package did not build. Its state is exactly the supplied
// attributes, forever; endpoint accessors fail with a PreconditionError when
// the corresponding attribute was not supplied at import time.
type ImportedCluster struct {
	attrs       ImportedClusterAttributes
	connections *Connections
}

var _ DatabaseCluster = (*ImportedCluster)(nil)

// NewImportedCluster adopts an existing cluster from its attributes.
func NewImportedCluster(attrs ImportedClusterAttributes) (*ImportedCluster, error) {
	if attrs.ClusterIdentifier == "" {
		return nil, fmt.Errorf("cluster identifier is required to import a cluster")
	}

	var connections *Connections
	if attrs.Port != 0 {
		connections = NewConnections(attrs.SecurityGroupIDs, attrs.Port)
	} else {
		connections = NewConnectionsWithoutPort(attrs.SecurityGroupIDs)
	}

	return &ImportedCluster{attrs: attrs, connections: connections}, nil
}

// ClusterIdentifier implements DatabaseCluster.
func (c *ImportedCluster) ClusterIdentifier() string {
	return c.attrs.ClusterIdentifier
}

// ClusterEndpoint implements DatabaseCluster. It fails when the endpoint
// address or port was not supplied at import time.
func (c *ImportedCluster) ClusterEndpoint() (Endpoint, error) {
	if c.attrs.ClusterEndpointAddress == "" || c.attrs.Port == 0 {
		return Endpoint{}, PreconditionError{
			Op:      "cluster endpoint",
			Message: "cannot access endpoint of an imported cluster without endpoint address and port",
		}
	}
	return NewEndpoint(c.attrs.ClusterEndpointAddress, c.attrs.Port), nil
}

// ClusterReadEndpoint implements DatabaseCluster. It fails when the reader
// address or port was not supplied at import time.
func (c *ImportedCluster) ClusterReadEndpoint() (Endpoint, error) {
	if c.attrs.ReaderEndpointAddress == "" || c.attrs.Port == 0 {
		return Endpoint{}, PreconditionError{
			Op:      "cluster read endpoint",
			Message: "cannot access read endpoint of an imported cluster without reader address and port",
		}
	}
	return NewEndpoint(c.attrs.ReaderEndpointAddress, c.attrs.Port), nil
}

// Connections implements DatabaseCluster. The descriptor is valid even when
// no port was supplied; it simply has no pre-bound default port.
func (c *ImportedCluster) Connections() *Connections {
	return c.connections
}

// AsSecretAttachmentTarget implements DatabaseCluster.
func (c *ImportedCluster) AsSecretAttachmentTarget() SecretAttachmentTarget {
	return SecretAttachmentTarget{
		TargetID:   c.attrs.ClusterIdentifier,
		TargetType: SecretTargetTypeCluster,
	}
}
