package domain

var (
	USER_LIST_SUCCESS   = "Successfully fetched users"
	USER_LIST_FAILED    = "Failed to fetch users"
	USER_DELETE_SUCCESS = "User deleted"
	USER_DELETE_FAILED  = "Failed to delete user"
)
