package rename

// RenamerFactory is a function that creates a Renamer
type RenamerFactory func() Renamer

// DefaultRenamerFactory creates a real engine on the OS filesystem
var DefaultRenamerFactory RenamerFactory = func() Renamer {
	return New()
}

// CurrentRenamerFactory is the currently active factory.
// Tests swap it to run commands against an in-memory filesystem.
var CurrentRenamerFactory = DefaultRenamerFactory

// SetRenamerFactory sets a custom renamer factory
func SetRenamerFactory(factory RenamerFactory) {
	CurrentRenamerFactory = factory
}

// ResetRenamerFactory resets to the default renamer factory
func ResetRenamerFactory() {
	CurrentRenamerFactory = DefaultRenamerFactory
}
