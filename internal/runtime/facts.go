package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/firstrun/pkg/domain"
)

// Fact names used in error messages and logs.
const (
	FactCapability  = "device_supports_default_handler_configuration"
	FactIsDefault   = "is_current_default_handler"
	FactDialogCount = "prior_promotion_dialog_count"
)

// readFacts queries the collaborators in a fixed order. The default handler status is
// only queried when the platform supports configuring one.
func (s *Selector) readFacts(ctx context.Context) (domain.OnboardingFacts, error) {
	var facts domain.OnboardingFacts

	supported, err := s.detector.SupportsDefaultHandlerConfiguration()
	if err != nil {
		return facts, factError(FactCapability, err)
	}
	facts.DeviceSupportsDefaultHandlerConfiguration = supported

	if supported {
		isDefault, err := s.detector.IsCurrentDefaultHandler()
		if err != nil {
			return facts, factError(FactIsDefault, err)
		}
		facts.IsCurrentDefaultHandler = isDefault
	}

	count, err := s.store.PromotionDialogCount(ctx)
	if err != nil {
		return facts, factError(FactDialogCount, err)
	}
	if count < 0 {
		return facts, fmt.Errorf("%w: %s: negative value %d", domain.ErrFactUnavailable, FactDialogCount, count)
	}
	facts.PriorPromotionDialogCount = count

	return facts, nil
}

func factError(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrFactUnavailable, name, err)
}
