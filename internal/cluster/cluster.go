package cluster

// SecretTargetTypeCluster is the fixed target type tag identifying database
// cluster attachment targets to the rotation executor.
const SecretTargetTypeCluster = "AWS::RDS::DBCluster"

// SecretAttachmentTarget tells the secret-rotation executor how to reach and
// authenticate against the resource a secret belongs to.
type SecretAttachmentTarget struct {
	TargetID   string
	TargetType string
}

// AttachedSecret is a secret that has been bound to a cluster. After
// attachment the secret is shared between the credential subsystem and the
// cluster; neither may mutate the resolved password.
type AttachedSecret struct {
	ARN    string
	Target SecretAttachmentTarget
}

// DatabaseCluster is the capability surface shared by clusters this package
// built and clusters imported from externally supplied attributes. Endpoint
// accessors return an error instead of degrading to a zero value when the
// underlying attribute is not available.
type DatabaseCluster interface {
	// ClusterIdentifier returns the cluster's identifier.
	ClusterIdentifier() string

	// ClusterEndpoint returns the read/write endpoint.
	ClusterEndpoint() (Endpoint, error)

	// ClusterReadEndpoint returns the read-only endpoint.
	ClusterReadEndpoint() (Endpoint, error)

	// Connections returns the cluster's network connections descriptor.
	Connections() *Connections

	// AsSecretAttachmentTarget returns the attachment target descriptor used
	// when binding a secret to this cluster.
	AsSecretAttachmentTarget() SecretAttachmentTarget
}

// Cluster is a database cluster built by this package. Its identifier and
// endpoints are live attributes returned by the provisioning engine, so
// endpoint accessors never fail.
type Cluster struct {
	identifier   string
	endpoint     Endpoint
	readEndpoint Endpoint
	connections  *Connections
	placement    VpcPlacement
	secret       *AttachedSecret
}

var _ DatabaseCluster = (*Cluster)(nil)

// ClusterIdentifier implements DatabaseCluster.
func (c *Cluster) ClusterIdentifier() string {
	return c.identifier
}

// ClusterEndpoint implements DatabaseCluster.
func (c *Cluster) ClusterEndpoint() (Endpoint, error) {
	return c.endpoint, nil
}

// ClusterReadEndpoint implements DatabaseCluster.
func (c *Cluster) ClusterReadEndpoint() (Endpoint, error) {
	return c.readEndpoint, nil
}

// Connections implements DatabaseCluster.
func (c *Cluster) Connections() *Connections {
	return c.connections
}

// AsSecretAttachmentTarget implements DatabaseCluster.
func (c *Cluster) AsSecretAttachmentTarget() SecretAttachmentTarget {
	return SecretAttachmentTarget{
		TargetID:   c.identifier,
		TargetType: SecretTargetTypeCluster,
	}
}

// Placement returns the network placement the cluster was built with, used
// by rotation jobs to reach the cluster.
func (c *Cluster) Placement() VpcPlacement {
	return c.placement
}

// AttachedSecret returns the secret attached during build, or nil when the
// cluster was built from explicit plaintext credentials.
func (c *Cluster) AttachedSecret() *AttachedSecret {
	return c.secret
}
