package aws

import (
	"errors"

	"github.com/aws/smithy-go"
)

// isAPIErrorCode checks if the error is an AWS API error with one of the given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err,
		"ResourceNotFoundException",
		"DBClusterNotFoundFault",
		"DBSubnetGroupNotFoundFault",
		"InvalidSubnetID.NotFound",
		"InvalidGroup.NotFound",
	)
}

// IsAlreadyExists checks if an error indicates a resource already exists.
func IsAlreadyExists(err error) bool {
	return isAPIErrorCode(err,
		"ResourceExistsException",
		"DBClusterAlreadyExistsFault",
		"DBSubnetGroupAlreadyExists",
		"InvalidGroup.Duplicate",
	)
}
