package task

// Filter holds optional filter criteria for listing tasks.
// Nil fields mean "no filter" for that dimension.
type Filter struct {
	TaskListID *int64
	Completed  *bool
}
