package llmresponse

// ActionItem is one task extracted from a transcript, before persistence.
// Nil Owner or DueDate means the model did not supply a value.
type ActionItem struct {
	Task    string   `json:"task" validate:"required"`
	Owner   *string  `json:"owner"`
	DueDate *string  `json:"dueDate"`
	Tags    []string `json:"tags" validate:"required"`
}

// Batch is a validated, non-empty list of action items.
type Batch []ActionItem
