package domain

// OnboardingFacts is the read-only snapshot the selector decides on.
type OnboardingFacts struct {
	DeviceSupportsDefaultHandlerConfiguration bool `json:"device_supports_default_handler_configuration"`

	// IsCurrentDefaultHandler is only read when the device supports configuration.
	// Otherwise it stays false.
	IsCurrentDefaultHandler bool `json:"is_current_default_handler"`

	PriorPromotionDialogCount int `json:"prior_promotion_dialog_count"`
}

// PromotionEligible reports whether the default browser promotion page should be shown:
// the platform supports it, the app is not already the default, and the dialog was never shown.
func (f OnboardingFacts) PromotionEligible() bool {
	return f.DeviceSupportsDefaultHandlerConfiguration &&
		!f.IsCurrentDefaultHandler &&
		f.PriorPromotionDialogCount == 0
}
