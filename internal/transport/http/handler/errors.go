package handler

const (
	errInternalServer      = "Internal server error"
	errDocumentNotFound    = "Document not found"
	errMissingRelativeDate = "relative_date query parameter is required"
	errWorkItemUpstream    = "Failed to create work item"
	errPlayerUnavailable   = "Player command failed"
)
