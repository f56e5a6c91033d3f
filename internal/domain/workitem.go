package domain

// WorkItem is the subset of a DevOps work item this service reports back
// after creating one.
type WorkItem struct {
	ID    int
	URL   string
	Title string
	State string
}
