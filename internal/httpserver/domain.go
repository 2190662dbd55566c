package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	actionItemHTTP "meeting-tracker/internal/actionitem/delivery/http"
	actionItemRepo "meeting-tracker/internal/actionitem/repository/postgre"
	actionItemUC "meeting-tracker/internal/actionitem/usecase"
	healthHTTP "meeting-tracker/internal/health/delivery/http"
	healthUC "meeting-tracker/internal/health/usecase"
	transcriptHTTP "meeting-tracker/internal/transcript/delivery/http"
	transcriptRepo "meeting-tracker/internal/transcript/repository/postgre"
	transcriptUC "meeting-tracker/internal/transcript/usecase"
)

// Each domain follows the same wiring:
//  1. Repository:   repo := xRepo.New(srv.db, srv.l)
//  2. UseCase:      uc := xUC.New(repo, ..., srv.l)
//  3. HTTP Handler: h := xHTTP.New(srv.l, uc)
//  4. Routes:       xHTTP.RegisterRoutes(api, h, srv.mw)

// setupTranscriptDomain registers /api/transcripts and /api/history.
func (srv HTTPServer) setupTranscriptDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := transcriptRepo.New(srv.db, srv.l)
	uc := transcriptUC.New(repo, srv.llm, srv.l)
	h := transcriptHTTP.New(srv.l, uc)
	transcriptHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Transcript domain registered")
	return nil
}

// setupActionItemDomain registers /api/action-items.
func (srv HTTPServer) setupActionItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := actionItemRepo.New(srv.db, srv.l)
	uc := actionItemUC.New(repo, srv.l)
	h := actionItemHTTP.New(srv.l, uc)
	actionItemHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Action item domain registered")
	return nil
}

// setupHealthDomain registers /api/health/llm and /api/health/db.
func (srv HTTPServer) setupHealthDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := healthUC.New(srv.llm, srv.db, srv.healthCacheTTL, srv.l)
	h := healthHTTP.New(srv.l, uc)
	healthHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Health domain registered")
	return nil
}
