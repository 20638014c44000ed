package entity

// Todo is a single todo item.
// CompletedAt holds milliseconds since epoch and is nil unless Completed is true.
type Todo struct {
	ID          string
	Text        string
	Completed   bool
	CompletedAt *int64
}
