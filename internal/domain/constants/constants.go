// Package constants contains values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used in production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint that mimics Pub/Sub push.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// FCMBatchLimit is the maximum number of tokens per multicast request.
const FCMBatchLimit = 500
