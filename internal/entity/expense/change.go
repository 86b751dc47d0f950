package expense

type ChangeKind string

const (
	Insert ChangeKind = "insert"
	Delete ChangeKind = "delete"
)

// ChangeEvent is a notification pushed by the change feed. The event
// belongs to Record.Owner; delete events only need ID and Owner set.
type ChangeEvent struct {
	Kind   ChangeKind
	Record Record
}

func (e ChangeEvent) Owner() string {
	return e.Record.Owner
}
