package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jobsarthi/notification-parser/gen/ent"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
	"github.com/jobsarthi/notification-parser/internal/pipeline"
)

// ParseRunRepository persists the unconditional audit trail plus the
// structured result and post breakdown of successful runs.
type ParseRunRepository interface {
	pipeline.AuditSink
	GetByRunID(ctx context.Context, runID uuid.UUID) (*ent.ParseRun, error)
	List(ctx context.Context, filter ListFilter) ([]*ent.ParseRun, error)
}

// ListFilter narrows List. Zero values mean "any".
type ListFilter struct {
	SourceID string
	Status   string
	Since    *time.Time
	Limit    int
}

type parseRunRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseRunRepository(entc *ent.Client, log *slog.Logger) ParseRunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &parseRunRepo{ent: entc, log: log}
}

// Record implements pipeline.AuditSink: one row per run, any outcome, plus
// job_post rows when the splitter produced a breakdown.
func (r *parseRunRepo) Record(ctx context.Context, out pipeline.Outcome) error {
	rec := out.Run
	runID, err := uuid.Parse(rec.RunID)
	if err != nil {
		return fmt.Errorf("parse run id: %w", err)
	}

	create := r.ent.ParseRun.
		Create().
		SetID(runID).
		SetJobID(rec.JobID).
		SetSourceID(rec.SourceID).
		SetCategory(rec.Category).
		SetStatus(string(rec.Status)).
		SetErrorKind(rec.ErrorKind).
		SetDurationMs(rec.DurationMs).
		SetTokensUsed(rec.TokensUsed).
		SetAttempts(rec.Attempts).
		SetChunks(rec.Chunks).
		SetIsCorrigendum(rec.IsCorrigendum).
		SetNeedsReview(rec.NeedsReview).
		SetModelName(rec.Model).
		SetSummary(rec.Summary).
		SetFinishedAt(time.Now())
	if rec.ErrorMessage != "" {
		create = create.SetErrorMessage(rec.ErrorMessage)
	}
	if len(rec.ValidationErrors) > 0 {
		create = create.SetValidationErrors(rec.ValidationErrors)
	}
	if out.Result != nil {
		b, err := json.Marshal(out.Result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		create = create.SetResultJSON(b)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("parse_run record failed", "run_id", rec.RunID, "err", err)
		return err
	}

	for _, p := range out.Posts {
		pc := r.ent.JobPost.
			Create().
			SetRunID(row.ID).
			SetPostName(p.PostName)
		if p.Vacancies != nil {
			pc = pc.SetVacancies(*p.Vacancies)
		}
		if p.Eligibility != nil {
			pc = pc.SetEligibility(*p.Eligibility)
		}
		if p.PayLevel != nil {
			pc = pc.SetPayLevel(*p.PayLevel)
		}
		if p.AgeLimit != nil {
			pc = pc.SetAgeLimit(*p.AgeLimit)
		}
		if _, err := pc.Save(ctx); err != nil {
			r.log.Error("job_post record failed", "run_id", rec.RunID, "post", p.PostName, "err", err)
			return err
		}
	}

	r.log.Info("parse_run recorded",
		"run_id", rec.RunID,
		"job_id", rec.JobID,
		"status", string(rec.Status),
		"posts", len(out.Posts),
	)
	return nil
}

func (r *parseRunRepo) GetByRunID(ctx context.Context, runID uuid.UUID) (*ent.ParseRun, error) {
	row, err := r.ent.ParseRun.
		Query().
		Where(parserun.ID(runID)).
		WithPosts().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *parseRunRepo) List(ctx context.Context, filter ListFilter) ([]*ent.ParseRun, error) {
	q := r.ent.ParseRun.Query()
	if filter.SourceID != "" {
		q = q.Where(parserun.SourceID(filter.SourceID))
	}
	if filter.Status != "" {
		q = q.Where(parserun.Status(filter.Status))
	}
	if filter.Since != nil {
		q = q.Where(parserun.StartedAtGTE(*filter.Since))
	}
	q = q.Order(ent.Desc(parserun.FieldStartedAt))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	return q.All(ctx)
}
