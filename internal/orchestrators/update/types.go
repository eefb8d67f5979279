package update

// Status is the outcome of an update check
type Status string

const (
	// StatusUpToDate means the running build is the latest release or newer.
	// Development builds also report this, with Development set.
	StatusUpToDate Status = "up_to_date"

	// StatusUpdateAvailable means a newer release was published
	StatusUpdateAvailable Status = "update_available"

	// StatusCheckFailed means the latest release could not be determined
	StatusCheckFailed Status = "check_failed"
)

// CheckInput contains the running build's version
type CheckInput struct {
	CurrentVersion string
}

// CheckOutput describes the check result. Reason is set only for
// StatusCheckFailed.
type CheckOutput struct {
	Status      Status
	Current     string
	Latest      string
	ReleaseURL  string
	Reason      string
	Development bool
	FromCache   bool
}
