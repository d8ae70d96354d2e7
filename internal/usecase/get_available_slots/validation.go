package get_available_slots

import "fmt"

// validateRequest checks the request shape. The date may lie in the
// past: past dates come back with every slot unavailable rather than
// as an error, so a stale deep link degrades gracefully.
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
