package naming

import "fmt"

// Naming functions for resources derived from a cluster.
// All derived AWS resources follow consistent naming patterns to enable
// easy identification and cleanup.

func SubnetGroup(cluster string) string {
	return fmt.Sprintf("%s-subnets", cluster)
}

func SecurityGroup(cluster string) string {
	return fmt.Sprintf("%s-default", cluster)
}

func Secret(cluster string) string {
	return fmt.Sprintf("%s-credentials", cluster)
}

func SingleUserRotation(cluster string) string {
	return fmt.Sprintf("%s-rotation-single-user", cluster)
}

func MultiUserRotation(cluster, id string) string {
	return fmt.Sprintf("%s-rotation-%s", cluster, id)
}
