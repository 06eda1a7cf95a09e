package core

// SoundType represents different feedback sounds
type SoundType int

const (
	SoundCorrect SoundType = iota // Accepted answer chime
	SoundMistake                  // Rejected answer buzz
	SoundPick                     // Chip lifted by a drag
	SoundDrop                     // Chip committed to a slot
	SoundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundCorrect:
		return "correct"
	case SoundMistake:
		return "mistake"
	case SoundPick:
		return "pick"
	case SoundDrop:
		return "drop"
	default:
		return "unknown"
	}
}
