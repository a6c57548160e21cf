package domain

var (
	LESSON_LIST_SUCCESS = "Successfully fetched lessons"
	LESSON_LIST_FAILED  = "Failed to fetch lessons"
	LESSON_GET_SUCCESS  = "Successfully fetched lesson"
	LESSON_GET_FAILED   = "Failed to fetch lesson"
)
