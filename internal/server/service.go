// Package server exposes the parsing engine over gRPC.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jobsarthi/notification-parser/gen/ent"
	parserv1 "github.com/jobsarthi/notification-parser/gen/proto/parser/v1"
	"github.com/jobsarthi/notification-parser/internal/async"
	"github.com/jobsarthi/notification-parser/internal/pipeline"
	"github.com/jobsarthi/notification-parser/internal/repository"
)

type ParserServiceServer struct {
	parserv1.UnimplementedParserServiceServer
	runner async.Runner
	queue  async.Queue
	runs   repository.ParseRunRepository
	logger *zap.Logger
}

func NewParserServiceServer(runner async.Runner, queue async.Queue, runs repository.ParseRunRepository, logger *zap.Logger) *ParserServiceServer {
	return &ParserServiceServer{runner: runner, queue: queue, runs: runs, logger: logger}
}

func (s *ParserServiceServer) ParseNotification(ctx context.Context, req *parserv1.ParseNotificationRequest) (*parserv1.ParseNotificationResponse, error) {
	if req.GetRawText() == "" {
		return nil, status.Error(codes.InvalidArgument, "raw_text is required")
	}
	if req.GetJobId() == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}

	out := s.runner.Run(ctx, pipeline.Input{
		RawText:  req.GetRawText(),
		JobID:    req.GetJobId(),
		SourceID: req.GetSourceId(),
		Category: req.GetCategory(),
	})

	resp := &parserv1.ParseNotificationResponse{
		Run:              runRecordToProto(out.Run),
		ValidationErrors: out.ValidationErrors,
	}
	if out.Result != nil {
		b, err := json.Marshal(out.Result)
		if err != nil {
			s.logger.Warn("marshal result failed", zap.Error(err))
		} else {
			resp.ResultJson = string(b)
		}
	}
	for _, p := range out.Posts {
		resp.Posts = append(resp.Posts, &parserv1.JobPost{
			PostName:    p.PostName,
			Vacancies:   int32Val(p.Vacancies),
			Eligibility: strVal(p.Eligibility),
			PayLevel:    strVal(p.PayLevel),
			AgeLimit:    strVal(p.AgeLimit),
		})
	}
	return resp, nil
}

func (s *ParserServiceServer) EnqueueParse(ctx context.Context, req *parserv1.EnqueueParseRequest) (*parserv1.EnqueueParseResponse, error) {
	if req.GetRawText() == "" {
		return nil, status.Error(codes.InvalidArgument, "raw_text is required")
	}
	if req.GetJobId() == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}

	err := s.queue.Enqueue(ctx, async.Job{
		Input: pipeline.Input{
			RawText:  req.GetRawText(),
			JobID:    req.GetJobId(),
			SourceID: req.GetSourceId(),
			Category: req.GetCategory(),
		},
		SubmittedAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("enqueue failed", zap.String("job_id", req.GetJobId()), zap.Error(err))
		if errors.Is(err, async.ErrQueueClosed) {
			return nil, status.Error(codes.Unavailable, "parser is shutting down")
		}
		return nil, status.Error(codes.Internal, "enqueue failed")
	}
	return &parserv1.EnqueueParseResponse{Accepted: true}, nil
}

func (s *ParserServiceServer) GetParseRun(ctx context.Context, req *parserv1.GetParseRunRequest) (*parserv1.GetParseRunResponse, error) {
	runID, err := uuid.Parse(req.GetRunId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "run_id must be a UUID")
	}
	row, err := s.runs.GetByRunID(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "parse run not found")
		}
		s.logger.Warn("get parse run failed", zap.String("run_id", req.GetRunId()), zap.Error(err))
		return nil, status.Error(codes.Internal, "get parse run failed")
	}

	resp := &parserv1.GetParseRunResponse{
		Run:        runRowToProto(row),
		ResultJson: string(row.ResultJSON),
	}
	for _, p := range row.Edges.Posts {
		post := &parserv1.JobPost{PostName: p.PostName}
		if p.Vacancies != nil {
			post.Vacancies = int32(*p.Vacancies)
		}
		post.Eligibility = strVal(p.Eligibility)
		post.PayLevel = strVal(p.PayLevel)
		post.AgeLimit = strVal(p.AgeLimit)
		resp.Posts = append(resp.Posts, post)
	}
	return resp, nil
}

func (s *ParserServiceServer) ListParseRuns(ctx context.Context, req *parserv1.ListParseRunsRequest) (*parserv1.ListParseRunsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.runs.List(ctx, repository.ListFilter{
		SourceID: req.GetSourceId(),
		Status:   req.GetStatus(),
		Limit:    limit,
	})
	if err != nil {
		s.logger.Warn("list parse runs failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list parse runs failed")
	}

	resp := &parserv1.ListParseRunsResponse{}
	for _, row := range rows {
		resp.Runs = append(resp.Runs, runRowToProto(row))
	}
	return resp, nil
}

func runRecordToProto(rec pipeline.RunRecord) *parserv1.ParseRun {
	return &parserv1.ParseRun{
		RunId:         rec.RunID,
		JobId:         rec.JobID,
		SourceId:      rec.SourceID,
		Category:      rec.Category,
		Status:        string(rec.Status),
		ErrorKind:     rec.ErrorKind,
		ErrorMessage:  rec.ErrorMessage,
		DurationMs:    rec.DurationMs,
		TokensUsed:    int32(rec.TokensUsed),
		Attempts:      int32(rec.Attempts),
		Chunks:        int32(rec.Chunks),
		IsCorrigendum: rec.IsCorrigendum,
		NeedsReview:   rec.NeedsReview,
		ModelName:     rec.Model,
		Summary:       rec.Summary,
	}
}

func runRowToProto(row *ent.ParseRun) *parserv1.ParseRun {
	out := &parserv1.ParseRun{
		RunId:         row.ID.String(),
		JobId:         row.JobID,
		SourceId:      row.SourceID,
		Category:      row.Category,
		Status:        row.Status,
		ErrorKind:     row.ErrorKind,
		DurationMs:    row.DurationMs,
		TokensUsed:    int32(row.TokensUsed),
		Attempts:      int32(row.Attempts),
		Chunks:        int32(row.Chunks),
		IsCorrigendum: row.IsCorrigendum,
		NeedsReview:   row.NeedsReview,
		ModelName:     row.ModelName,
		Summary:       row.Summary,
		StartedAt:     row.StartedAt.Format(time.RFC3339Nano),
	}
	if row.ErrorMessage != nil {
		out.ErrorMessage = *row.ErrorMessage
	}
	if row.FinishedAt != nil {
		out.FinishedAt = row.FinishedAt.Format(time.RFC3339Nano)
	}
	return out
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int32Val(n *int) int32 {
	if n == nil {
		return 0
	}
	return int32(*n)
}
