package constants

// PreviewStatus is the canonical preview state stored on a document.
type PreviewStatus string

// Stable values (store these exact strings in DB).
const (
	PreviewQueued     PreviewStatus = "QUEUED"     // preview requested, job not started
	PreviewProcessing PreviewStatus = "PROCESSING" // generation in progress (re-entered on retry)
	PreviewReady      PreviewStatus = "READY"      // terminal for the current content version
	PreviewFailed     PreviewStatus = "FAILED"     // terminal for the current content version
)

// NodeStatus is the lifecycle state of a stored document record.
type NodeStatus string

const (
	NodeActive  NodeStatus = "ACTIVE"
	NodeDeleted NodeStatus = "DELETED"
)

// FailureCategory classifies a preview failure. It is derived, never stored.
type FailureCategory string

const (
	CategoryUnsupported FailureCategory = "UNSUPPORTED" // format can never be previewed
	CategoryTemporary   FailureCategory = "TEMPORARY"   // infrastructure-ish, retried
	CategoryPermanent   FailureCategory = "PERMANENT"   // content is broken, not retried
)

// TriggerType identifies the event an automation rule fires on.
type TriggerType string

const (
	TriggerDocumentCreated TriggerType = "DOCUMENT_CREATED"
	TriggerDocumentUpdated TriggerType = "DOCUMENT_UPDATED"
)

// TriggerTypes holds the allowed values for the trigger field in AutomationRule.
var TriggerTypes = []string{string(TriggerDocumentCreated), string(TriggerDocumentUpdated)}

// Rule action types.
const (
	ActionAddTag           = "ADD_TAG"
	ActionSetCategory      = "SET_CATEGORY"
	ActionSetCorrespondent = "SET_CORRESPONDENT"
)

// ActionTypes holds the allowed values for rule action types.
var ActionTypes = []string{ActionAddTag, ActionSetCategory, ActionSetCorrespondent}

// NodeStatuses holds the allowed values for the status field in Document.
var NodeStatuses = []string{string(NodeActive), string(NodeDeleted)}

// PreviewStatuses holds the allowed values for the preview_status field in Document.
var PreviewStatuses = []string{
	string(PreviewQueued),
	string(PreviewProcessing),
	string(PreviewReady),
	string(PreviewFailed),
}
