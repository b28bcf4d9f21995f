package engine

// VisualUpdate reports a loaded bot image; Aspect is width over height
type VisualUpdate struct {
	Index  int
	Aspect float64
}

// Visual is the per-agent presentation state read by renderers
type Visual struct {
	Aspect float64
	Ready  bool
}

// PlaceholderVisual is shown until the agent's asset arrives
var PlaceholderVisual = Visual{Aspect: 1}

// VisualQueue carries asset readiness from loader goroutines to the tick
// Post never blocks; a full queue drops the update
type VisualQueue struct {
	ch chan VisualUpdate
}

// NewVisualQueue creates a queue holding at most size pending updates
func NewVisualQueue(size int) *VisualQueue {
	if size < 1 {
		size = 1
	}
	return &VisualQueue{ch: make(chan VisualUpdate, size)}
}

// Post enqueues an update, false when the queue is full
func (q *VisualQueue) Post(u VisualUpdate) bool {
	select {
	case q.ch <- u:
		return true
	default:
		return false
	}
}

// Drain applies every pending update to visuals, ignoring unknown indices
// and non-positive aspects; returns the number applied
func (q *VisualQueue) Drain(visuals []Visual) int {
	applied := 0
	for {
		select {
		case u := <-q.ch:
			if u.Index < 0 || u.Index >= len(visuals) || u.Aspect <= 0 {
				continue
			}
			visuals[u.Index] = Visual{Aspect: u.Aspect, Ready: true}
			applied++
		default:
			return applied
		}
	}
}
