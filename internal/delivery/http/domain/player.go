package domain

var (
	PLAYER_START_SUCCESS      = "Attempt started"
	PLAYER_START_FAILED       = "Failed to start attempt"
	PLAYER_GET_SUCCESS        = "Successfully fetched attempt"
	PLAYER_GET_FAILED         = "Failed to fetch attempt"
	PLAYER_VOCABULARY_SUCCESS = "Vocabulary card changed"
	PLAYER_VOCABULARY_FAILED  = "Failed to change vocabulary card"
	PLAYER_ANSWER_SUCCESS     = "Answer submitted"
	PLAYER_ANSWER_FAILED      = "Failed to submit answer"
	PLAYER_CONTINUE_SUCCESS   = "Moved to next exercise"
	PLAYER_CONTINUE_FAILED    = "Failed to move to next exercise"
	PLAYER_ABANDON_SUCCESS    = "Attempt closed"
	PLAYER_ABANDON_FAILED     = "Failed to close attempt"
)
