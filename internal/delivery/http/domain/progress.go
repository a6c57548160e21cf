package domain

var (
	PROGRESS_SAVE_SUCCESS     = "Progress saved"
	PROGRESS_SAVE_FAILED      = "Failed to save progress"
	PROGRESS_GET_SUCCESS      = "Successfully fetched progress"
	PROGRESS_GET_FAILED       = "Failed to fetch progress"
	PROGRESS_COMPLETE_SUCCESS = "Lesson result recorded"
	PROGRESS_COMPLETE_FAILED  = "Failed to record lesson result"
	PROGRESS_RESULTS_SUCCESS  = "Successfully fetched results"
	PROGRESS_RESULTS_FAILED   = "Failed to fetch results"
	PROGRESS_EXPORT_FAILED    = "Failed to export results"
	PROGRESS_STATS_SUCCESS    = "Successfully fetched stats"
	PROGRESS_STATS_FAILED     = "Failed to fetch stats"
)
