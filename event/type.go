package event

// EventType represents the type of widget loop event
type EventType int

const (
	// EventFragmentMeasured reports the rendered size of a fragment
	// Trigger: bounds.Reporter | Consumer: widget.Controller | Payload: *MeasuredPayload
	EventFragmentMeasured EventType = iota

	// EventContainerMeasured reports the size of the droppable region
	// Trigger: bounds.Reporter, resize | Consumer: widget.Controller | Payload: *MeasuredPayload
	EventContainerMeasured

	// EventSoundRequest requests audio playback
	// Trigger: answer verdicts, drag begin/commit | Consumer: audio.Player | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventVerdict reports the outcome of a checked answer
	// Trigger: widget.Controller callbacks | Consumer: status line | Payload: *VerdictPayload
	EventVerdict
)

// String returns the event name for logging
func (t EventType) String() string {
	switch t {
	case EventFragmentMeasured:
		return "FragmentMeasured"
	case EventContainerMeasured:
		return "ContainerMeasured"
	case EventSoundRequest:
		return "SoundRequest"
	case EventVerdict:
		return "Verdict"
	default:
		return "Unknown"
	}
}

// Event is a single queued loop event
type Event struct {
	Type    EventType
	Payload any
	// Generation tags events with the widget configuration they were produced for;
	// stale measurements from a previous configuration are dropped by consumers
	Generation uint64
}
