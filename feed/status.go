package feed

type Status int

const (
	StatusNotReady Status = iota
	StatusReady
	StatusRunning
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusNotReady:
		return "not_ready"
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
