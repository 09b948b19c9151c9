package reconcile

const (
	titleError   = "Error"
	titleOops    = "Oops"
	titleSuccess = "Success"
	titleCopied  = "Copied"
	titleFailed  = "Failed"
	titleInfo    = "Info"
	titleBusy    = "Busy"

	msgEmptyReview   = "Please fill in a review first."
	msgAnalyzed      = "Review analyzed and saved."
	msgAnalyzeFailed = "Failed to analyze review."
	msgBusy          = "Wait for the current analysis to finish."
	msgReloadForm    = "Failed to fetch reviews. Check the backend."
	msgReloadToast   = "Failed to fetch reviews from the server."
	msgCopied        = "Key points copied to clipboard."
	msgCopyFailed    = "Could not copy to clipboard."

	infoExcerptRunes = 60
)
