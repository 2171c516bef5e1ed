package backup

import "fmt"

// ProgressUpdate represents a progress event during a catalog backup.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ScanCatalog Phase = iota
	ExportAccount
)

func (p Phase) String() string {
	switch p {
	case ScanCatalog:
		return "scan_catalog"
	case ExportAccount:
		return "export_account"
	default:
		return ""
	}
}

func scanCatalogUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ScanCatalog,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Exporting %d accounts...", total),
	}
}

func exportingAccountUpdate(step, total int, username string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportAccount,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, username),
	}
}

func exportCompletedUpdate(step, total int, username string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportAccount,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s", step, total, username),
	}
}

func exportFailedUpdate(step, total int, username, reason string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportAccount,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %s", step, total, username, reason),
	}
}
