package cluster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
	"github.com/auroractl/auroractl/internal/util/naming"
)

// DefaultUsername is the master username applied when the caller supplies no
// explicit credentials.
const DefaultUsername = "admin"

// secretExcludeCharacters are kept out of generated passwords because they
// break connection strings and JSON embedding.
const secretExcludeCharacters = "\"@/\\"

// CredentialSpec describes the master user credentials of a cluster. Exactly
// one password source may be active: an explicit plaintext password, a
// reference to an externally managed secret, or neither, which makes the
// resolver create a managed secret that becomes the sole source of truth.
type CredentialSpec struct {
	Username  string
	Password  string
	SecretARN string
}

// Validate checks that at most one password source is supplied.
func (c CredentialSpec) Validate() error {
	if c.Password != "" && c.SecretARN != "" {
		return fmt.Errorf("credentials must supply either a password or a secret reference, not both")
	}
	return nil
}

// Login is the canonical resolved credential descriptor. Once resolved,
// neither the credential subsystem nor the cluster may mutate the password.
type Login struct {
	// Username of the master user. Never empty after resolution.
	Username string

	// Password is the plaintext password when one is known locally: either
	// supplied explicitly or generated for a fresh managed secret. Empty
	// when the password lives only in an external secret.
	Password string

	// SecretARN references the secret holding the password, for both managed
	// and externally supplied secrets. Empty for plaintext-only credentials.
	SecretARN string

	// Managed reports whether the secret was created by the resolver during
	// this resolution.
	Managed bool
}

// secretPayload is the JSON document stored in a managed secret.
type secretPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResolveCredentials turns a CredentialSpec into a canonical Login. Explicit
// passwords and secret references pass through unchanged. When neither is
// supplied, a managed secret scoped to the username is created (encrypted
// with kmsKeyID when given) and becomes the password source. The resolver
// never rotates or reads existing secret values.
func ResolveCredentials(ctx context.Context, spec CredentialSpec, clusterIdentifier, kmsKeyID string, secrets platformaws.SecretsAPI) (Login, error) {
	if err := spec.Validate(); err != nil {
		return Login{}, err
	}

	username := spec.Username
	if username == "" {
		username = DefaultUsername
	}

	if spec.SecretARN != "" {
		return Login{Username: username, SecretARN: spec.SecretARN}, nil
	}
	if spec.Password != "" {
		return Login{Username: username, Password: spec.Password}, nil
	}

	random, err := secrets.GetRandomPassword(ctx, &secretsmanager.GetRandomPasswordInput{
		PasswordLength:    aws.Int64(30),
		ExcludeCharacters: aws.String(secretExcludeCharacters),
	})
	if err != nil {
		return Login{}, fmt.Errorf("failed to generate password: %w", err)
	}
	password := aws.ToString(random.RandomPassword)

	payload, err := json.Marshal(secretPayload{Username: username, Password: password})
	if err != nil {
		return Login{}, fmt.Errorf("failed to marshal secret payload: %w", err)
	}

	input := &secretsmanager.CreateSecretInput{
		Name:         aws.String(naming.Secret(clusterIdentifier)),
		Description:  aws.String(fmt.Sprintf("Master credentials for cluster %s", clusterIdentifier)),
		SecretString: aws.String(string(payload)),
	}
	if kmsKeyID != "" {
		input.KmsKeyId = aws.String(kmsKeyID)
	}

	created, err := secrets.CreateSecret(ctx, input)
	if err != nil {
		if platformaws.IsAlreadyExists(err) {
			// The managed secret survived an earlier build of the same spec.
			// Reuse it as the password source; the stored value wins over the
			// freshly generated password.
			return reuseManagedSecret(ctx, username, naming.Secret(clusterIdentifier), secrets)
		}
		return Login{}, fmt.Errorf("failed to create managed secret: %w", err)
	}

	return Login{
		Username:  username,
		Password:  password,
		SecretARN: aws.ToString(created.ARN),
		Managed:   true,
	}, nil
}

// reuseManagedSecret resolves an existing managed secret by name. The
// password is left empty so submission reads the stored value instead of the
// one generated during this resolution.
func reuseManagedSecret(ctx context.Context, username, name string, secrets platformaws.SecretsAPI) (Login, error) {
	value, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return Login{}, fmt.Errorf("failed to reuse existing managed secret %s: %w", name, err)
	}
	return Login{
		Username:  username,
		SecretARN: aws.ToString(value.ARN),
		Managed:   true,
	}, nil
}

// MaterializePassword returns the plaintext password for a Login, reading it
// from the referenced secret when it is not known locally. It is called at
// the provisioning engine boundary, immediately before submission, so that
// declaration-time resolution stays free of secret reads.
func MaterializePassword(ctx context.Context, login Login, secrets platformaws.SecretsAPI) (string, error) {
	if login.Password != "" {
		return login.Password, nil
	}
	if login.SecretARN == "" {
		return "", fmt.Errorf("login has no password source")
	}

	value, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(login.SecretARN),
	})
	if err != nil {
		if platformaws.IsNotFound(err) {
			return "", PreconditionError{
				Op:      "materialize password",
				Message: fmt.Sprintf("secret %s does not exist", login.SecretARN),
			}
		}
		return "", fmt.Errorf("failed to read secret %s: %w", login.SecretARN, err)
	}

	var payload secretPayload
	if err := json.Unmarshal([]byte(aws.ToString(value.SecretString)), &payload); err != nil {
		return "", fmt.Errorf("secret %s does not hold a credential document: %w", login.SecretARN, err)
	}
	if payload.Password == "" {
		return "", fmt.Errorf("secret %s has no password field", login.SecretARN)
	}
	return payload.Password, nil
}
