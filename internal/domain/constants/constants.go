// Package constants holds literal values shared across layers.
package constants

const (
	// UserTopicPrefix prefixes the per-user broadcast topic, e.g. "user:<id>".
	UserTopicPrefix = "user:"

	// PushTopicPrefix prefixes the per-user FCM topic. FCM topic names cannot contain ':'.
	PushTopicPrefix = "user_"

	// EvidenceFolder is the storage folder for identity evidence, followed by the contract id.
	EvidenceFolder = "contracts/identity"

	// EventAttributeType is the Pub/Sub attribute carrying the event type.
	EventAttributeType = "event_type"
)

// Pub/Sub message attributes besides the event type.
const (
	EventAttributeTopic      = "topic"
	EventAttributeEventID    = "event_id"
	EventAttributeContractID = "contract_id"
	EventAttributeRequestID  = "request_id"
)

// Notifier providers.
const (
	NotifierProviderNoop   = "noop"
	NotifierProviderLocal  = "local"
	NotifierProviderGoogle = "google"
	NotifierProviderRedis  = "redis"
)

// Multipart field names of identity evidence uploads.
const (
	FieldIDFront = "cccdFront"
	FieldIDBack  = "cccdBack"
	FieldSelfie  = "selfie"
)
