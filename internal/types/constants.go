package types

const ContextUserKey = "user"

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// Statuses lists every accepted project and task status.
var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MinPasswordLength    = 8
	MaxPasswordLength    = 72
)
