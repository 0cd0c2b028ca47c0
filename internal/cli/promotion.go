package cli

import (
	"context"
	"fmt"
)

// RunPromotionShown records that the promotion dialog was displayed.
func RunPromotionShown(ctx context.Context, opts Options) error {
	engine, done, err := engineFor(opts)
	if err != nil {
		return err
	}
	defer done()

	count, err := engine.RecordPromotionDialogShown(ctx)
	if err != nil {
		return fmt.Errorf("error recording promotion dialog: %w", err)
	}
	printSystemMessage(opts.out(), "Promotion dialog recorded (shown %d time(s)).", count)
	return nil
}

// RunPromotionCount prints the stored promotion dialog counter.
func RunPromotionCount(ctx context.Context, opts Options) error {
	engine, done, err := engineFor(opts)
	if err != nil {
		return err
	}
	defer done()

	count, err := engine.PromotionDialogCount(ctx)
	if err != nil {
		return fmt.Errorf("error reading promotion dialog count: %w", err)
	}
	fmt.Fprintln(opts.out(), count)
	return nil
}
