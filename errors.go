package workspace

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by workspace composition. Validation failures are
// detected before any resource is declared; provisioning failures come back
// from the provider during reconciliation and are not retried here.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrProvisionFailed = errors.New("provision failed")
)

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func provisionFailed(res string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrProvisionFailed, res, err)
}
