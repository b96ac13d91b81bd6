package pathname

import "context"

// Approver handles user interaction for approval workflows,
// particularly for destructive operations like recursive removal.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the target's name for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before removing target and its subtree.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, target Path) (bool, error)
}
