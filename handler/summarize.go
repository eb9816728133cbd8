package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"github.com/snipfeed/snipfeed/summarize"
)

// Outbound calls define no timeout of their own, so one deadline covers the
// whole request.
const requestTimeout = 30 * time.Second

// Processor is the orchestration entry point as the HTTP layer sees it.
type Processor interface {
	Process(ctx context.Context, req summarize.Request) (summarize.Response, error)
}

type SummarizeAPI struct {
	processor Processor
	logger    *slog.Logger
}

func NewSummarizeAPI(processor Processor, logger *slog.Logger) *SummarizeAPI {
	return &SummarizeAPI{
		processor: processor,
		logger:    logger,
	}
}

func (s *SummarizeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		Failure(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s is not allowed, use POST", r.Method))
		return
	}

	var req summarize.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Failure(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	resp, err := s.processor.Process(ctx, req)
	if err != nil {
		s.logger.Error("request failed", err, slog.String("url", req.YoutubeURL))
		Failure(w, http.StatusBadRequest, err)
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("could not marshal response", err)
		Failure(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
