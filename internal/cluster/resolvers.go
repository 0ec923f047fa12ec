package cluster

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
	"github.com/auroractl/auroractl/internal/util/naming"
)

// Resolvers for the implicit defaults of a cluster spec. Each resolver
// returns the caller-supplied value when one is present and otherwise
// constructs the default, so the Builder composes them without hidden side
// effects.

// resolveSubnets resolves the placement to a concrete subnet id list. An
// explicit SubnetIDs selection is returned as-is; otherwise the VPC's subnets
// are looked up, filtered by subnet type when one is set. Subnet count is
// validated by the Builder, not here; availability zone distinctness cannot
// be validated at this layer and is intentionally not checked.
func resolveSubnets(ctx context.Context, placement VpcPlacement, network platformaws.NetworkAPI) ([]string, error) {
	if len(placement.SubnetIDs) > 0 {
		return placement.SubnetIDs, nil
	}

	input := &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{placement.VpcID}},
		},
	}
	if placement.SubnetType != "" {
		public := placement.SubnetType == SubnetTypePublic
		input.Filters = append(input.Filters, ec2types.Filter{
			Name:   aws.String("map-public-ip-on-launch"),
			Values: []string{fmt.Sprintf("%t", public)},
		})
	}

	out, err := network.DescribeSubnets(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subnets in VPC %s: %w", placement.VpcID, err)
	}

	subnetIDs := make([]string, 0, len(out.Subnets))
	for _, subnet := range out.Subnets {
		subnetIDs = append(subnetIDs, aws.ToString(subnet.SubnetId))
	}
	return subnetIDs, nil
}

// resolveSubnetGroup returns the caller-supplied subnet group name or creates
// one derived from the cluster identifier. A derived group is tagged for
// retention only when the cluster's removal policy is retain.
func resolveSubnetGroup(ctx context.Context, spec *ClusterSpec, subnetIDs []string, clusters platformaws.ClusterAPI) (string, error) {
	if spec.SubnetGroupName != "" {
		return spec.SubnetGroupName, nil
	}

	name := naming.SubnetGroup(spec.ClusterIdentifier)
	input := &rds.CreateDBSubnetGroupInput{
		DBSubnetGroupName:        aws.String(name),
		DBSubnetGroupDescription: aws.String(fmt.Sprintf("Subnets for cluster %s", spec.ClusterIdentifier)),
		SubnetIds:                subnetIDs,
		Tags:                     resourceTags(spec),
	}

	if _, err := clusters.CreateDBSubnetGroup(ctx, input); err != nil {
		// A derived group left over from an earlier build of the same spec is
		// reused, keeping repeated builds idempotent.
		if !platformaws.IsAlreadyExists(err) {
			return "", fmt.Errorf("failed to create subnet group %s: %w", name, err)
		}
	}
	return name, nil
}

// resolveSecurityGroups returns the caller-supplied security group ids or
// creates exactly one default group scoped to the placement VPC.
func resolveSecurityGroups(ctx context.Context, spec *ClusterSpec, network platformaws.NetworkAPI) ([]string, error) {
	if len(spec.SecurityGroupIDs) > 0 {
		return spec.SecurityGroupIDs, nil
	}

	name := naming.SecurityGroup(spec.ClusterIdentifier)
	out, err := network.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String(fmt.Sprintf("Default security group for cluster %s", spec.ClusterIdentifier)),
		VpcId:       aws.String(spec.Placement.VpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create security group %s: %w", name, err)
	}
	return []string{aws.ToString(out.GroupId)}, nil
}

// resourceTags returns the common tags applied to resources derived from a
// cluster. The retain tag mirrors the cluster's removal policy so cleanup
// tooling can honor it.
func resourceTags(spec *ClusterSpec) []rdstypes.Tag {
	tags := []rdstypes.Tag{
		{Key: aws.String("auroractl.io/managed"), Value: aws.String("true")},
		{Key: aws.String("auroractl.io/cluster"), Value: aws.String(spec.ClusterIdentifier)},
	}
	if spec.RemovalPolicy == RemovalPolicyRetain {
		tags = append(tags, rdstypes.Tag{
			Key:   aws.String("auroractl.io/retain"),
			Value: aws.String("true"),
		})
	}
	return tags
}
