package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errClusterNameRequired = errors.New("cluster name is required")
	errClusterNameInvalid  = errors.New("cluster name must be 1-63 lowercase alphanumeric characters or hyphens, starting with a letter")
	errVpcIDRequired       = errors.New("VPC id is required")
	errVpcIDInvalid        = errors.New("invalid VPC id format (expected: vpc-...)")
)
