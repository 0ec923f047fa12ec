package wizard

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/auroractl/auroractl/internal/cluster"
)

// RegionOption represents an AWS region.
type RegionOption struct {
	Value       string
	Label       string
	Description string
}

// Regions contains the regions offered by the wizard.
var Regions = []RegionOption{
	{Value: "us-east-1", Label: "us-east-1", Description: "N. Virginia, USA"},
	{Value: "us-east-2", Label: "us-east-2", Description: "Ohio, USA"},
	{Value: "us-west-2", Label: "us-west-2", Description: "Oregon, USA"},
	{Value: "eu-west-1", Label: "eu-west-1", Description: "Ireland"},
	{Value: "eu-west-2", Label: "eu-west-2", Description: "London, UK"},
	{Value: "eu-central-1", Label: "eu-central-1", Description: "Frankfurt, Germany"},
	{Value: "ap-northeast-1", Label: "ap-northeast-1", Description: "Tokyo, Japan"},
	{Value: "ap-southeast-1", Label: "ap-southeast-1", Description: "Singapore"},
	{Value: "ap-southeast-2", Label: "ap-southeast-2", Description: "Sydney, Australia"},
	{Value: "ca-central-1", Label: "ca-central-1", Description: "Canada"},
}

// EngineOptions contains the database engine choices.
var EngineOptions = []huh.Option[string]{
	huh.NewOption("Aurora MySQL", string(cluster.EngineAuroraMySQL)),
	huh.NewOption("Aurora PostgreSQL", string(cluster.EngineAuroraPostgreSQL)),
}

// SubnetTypeOptions contains the subnet selection modes.
var SubnetTypeOptions = []huh.Option[string]{
	huh.NewOption("Private (Recommended)", "private"),
	huh.NewOption("Public", "public"),
}

// RemovalPolicyOptions contains the removal policy choices.
var RemovalPolicyOptions = []huh.Option[string]{
	huh.NewOption("Snapshot (Recommended)", string(cluster.RemovalPolicySnapshot)),
	huh.NewOption("Retain", string(cluster.RemovalPolicyRetain)),
	huh.NewOption("Destroy", string(cluster.RemovalPolicyDestroy)),
}

// AutoPauseOptions contains common auto-pause idle times in minutes.
var AutoPauseOptions = []huh.Option[int]{
	huh.NewOption("Never pause", 0),
	huh.NewOption("5 minutes", 5),
	huh.NewOption("10 minutes", 10),
	huh.NewOption("30 minutes", 30),
	huh.NewOption("1 hour", 60),
}

// RegionsToOptions converts RegionOption slice to huh.Option slice.
func RegionsToOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(Regions))
	for i, r := range Regions {
		opts[i] = huh.NewOption(r.Label+" - "+r.Description, r.Value)
	}
	return opts
}

// CapacityOptions converts the valid capacity units to huh.Option slice.
func CapacityOptions() []huh.Option[int] {
	capacities := []cluster.Capacity{
		cluster.Capacity1, cluster.Capacity2, cluster.Capacity8,
		cluster.Capacity16, cluster.Capacity32, cluster.Capacity64,
		cluster.Capacity128, cluster.Capacity192, cluster.Capacity256,
		cluster.Capacity384,
	}
	opts := make([]huh.Option[int], len(capacities))
	for i, c := range capacities {
		opts[i] = huh.NewOption(strconv.Itoa(int(c))+" capacity units", int(c))
	}
	return opts
}
