package http

import (
	"time"

	"meeting-tracker/internal/actionitem"
	"meeting-tracker/internal/model"
	"meeting-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	TranscriptID *string  `json:"transcript_id"`
	Task         string   `json:"task" binding:"required"`
	Owner        *string  `json:"owner"`
	DueDate      *string  `json:"due_date"`
	Tags         []string `json:"tags"`
}

func (r createReq) toInput() actionitem.CreateInput {
	return actionitem.CreateInput{
		TranscriptID: r.TranscriptID,
		Task:         r.Task,
		Owner:        r.Owner,
		DueDate:      r.DueDate,
		Tags:         r.Tags,
	}
}

// updateReq distinguishes omitted fields from explicit nulls for the
// clearable columns.
type updateReq struct {
	Task    *string                       `json:"task"`
	Owner   actionitem.Optional[string]   `json:"owner" swaggertype:"string"`
	DueDate actionitem.Optional[string]   `json:"due_date" swaggertype:"string"`
	Done    *bool                         `json:"done"`
	Tags    actionitem.Optional[[]string] `json:"tags" swaggertype:"array,string"`
}

func (r updateReq) toInput(id string) actionitem.UpdateInput {
	return actionitem.UpdateInput{
		ID:      id,
		Task:    r.Task,
		Owner:   r.Owner,
		DueDate: r.DueDate,
		Done:    r.Done,
		Tags:    r.Tags,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID           string         `json:"id"`
	TranscriptID *string        `json:"transcript_id"`
	Task         string         `json:"task"`
	Owner        *string        `json:"owner"`
	DueDate      *response.Date `json:"due_date"`
	Done         bool           `json:"done"`
	Tags         []string       `json:"tags"`
	CreatedAt    time.Time      `json:"created_at"`
}

func newItemResp(item model.ActionItem) itemResp {
	var due *response.Date
	if item.DueDate != nil {
		d := response.Date(*item.DueDate)
		due = &d
	}
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return itemResp{
		ID:           item.ID,
		TranscriptID: item.TranscriptID,
		Task:         item.Task,
		Owner:        item.Owner,
		DueDate:      due,
		Done:         item.Done,
		Tags:         tags,
		CreatedAt:    item.CreatedAt,
	}
}

type deleteResp struct {
	Success bool `json:"success"`
}
