package memory

// Detector implements ports.DefaultHandlerDetector with fixed answers.
// It backs configuration-driven setups and tests where no platform detector exists.
type Detector struct {
	Supported bool
	IsDefault bool
}

// NewDetector creates a detector with the given answers.
func NewDetector(supported, isDefault bool) *Detector {
	return &Detector{Supported: supported, IsDefault: isDefault}
}

// SupportsDefaultHandlerConfiguration returns the configured capability.
func (d *Detector) SupportsDefaultHandlerConfiguration() (bool, error) {
	return d.Supported, nil
}

// IsCurrentDefaultHandler returns the configured default status.
func (d *Detector) IsCurrentDefaultHandler() (bool, error) {
	return d.IsDefault, nil
}
