package http

import (
	"time"

	"meeting-tracker/internal/model"
	"meeting-tracker/internal/transcript"
	"meeting-tracker/pkg/response"
)

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text" binding:"required,max=50000"`
}

func (r processReq) toInput() transcript.ProcessInput {
	return transcript.ProcessInput{Text: r.Text}
}

// --- Response DTOs ---

type actionItemResp struct {
	ID           string         `json:"id"`
	TranscriptID *string        `json:"transcript_id"`
	Task         string         `json:"task"`
	Owner        *string        `json:"owner"`
	DueDate      *response.Date `json:"due_date"`
	Done         bool           `json:"done"`
	Tags         []string       `json:"tags"`
	CreatedAt    time.Time      `json:"created_at"`
}

func newActionItemResp(item model.ActionItem) actionItemResp {
	var due *response.Date
	if item.DueDate != nil {
		d := response.Date(*item.DueDate)
		due = &d
	}
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return actionItemResp{
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

type transcriptResp struct {
	ID          string           `json:"id"`
	Text        string           `json:"text"`
	CreatedAt   time.Time        `json:"created_at"`
	ActionItems []actionItemResp `json:"action_items"`
}

func newTranscriptResp(t model.Transcript) transcriptResp {
	items := make([]actionItemResp, len(t.ActionItems))
	for i, item := range t.ActionItems {
		items[i] = newActionItemResp(item)
	}
	return transcriptResp{
		ID:          t.ID,
		Text:        t.Text,
		CreatedAt:   t.CreatedAt,
		ActionItems: items,
	}
}

type processResp struct {
	Transcript transcriptResp `json:"transcript"`
	Provider   string         `json:"provider"`
}

func (h *handler) newProcessResp(out transcript.ProcessOutput) processResp {
	return processResp{
		Transcript: newTranscriptResp(out.Transcript),
		Provider:   out.Provider,
	}
}

type detailResp struct {
	Transcript transcriptResp `json:"transcript"`
}

func (h *handler) newDetailResp(out transcript.DetailOutput) detailResp {
	return detailResp{Transcript: newTranscriptResp(out.Transcript)}
}

type summaryResp struct {
	ID        string    `json:"id"`
	Snippet   string    `json:"snippet"`
	CreatedAt time.Time `json:"created_at"`
	ItemCount int       `json:"item_count"`
}

type historyResp struct {
	Transcripts []summaryResp `json:"transcripts"`
}

func (h *handler) newHistoryResp(out transcript.ListRecentOutput) historyResp {
	items := make([]summaryResp, len(out.Summaries))
	for i, s := range out.Summaries {
		items[i] = summaryResp{
			ID:        s.ID,
			Snippet:   s.Snippet,
			CreatedAt: s.CreatedAt,
			ItemCount: s.ItemCount,
		}
	}
	return historyResp{Transcripts: items}
}
