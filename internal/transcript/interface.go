package transcript

import (
	"context"

	"meeting-tracker/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	ListRecent(ctx context.Context) (ListRecentOutput, error)
}

// Extractor turns transcript text into validated action items.
// *llmprovider.Manager implements it.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (llmprovider.Result, error)
}
