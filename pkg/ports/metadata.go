package ports

import "context"

// InstallMetadataStore holds per-installation metadata used by onboarding.
type InstallMetadataStore interface {
	// PromotionDialogCount returns how many times the default browser promotion dialog
	// has been shown. Never negative.
	PromotionDialogCount(ctx context.Context) (int, error)

	// RecordPromotionDialogShown increments the counter and returns the new value.
	// Hosts call it when the dialog is actually displayed; the selector never does.
	RecordPromotionDialogShown(ctx context.Context) (int, error)
}
