package modes

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment lets internal panics propagate instead of being reported as errors.
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}
