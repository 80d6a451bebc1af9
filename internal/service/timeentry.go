package service

import (
	"context"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/timeentry"
	"github.com/rs/zerolog"
)

type TimeEntryService struct {
	tx     Transactor
	repo   TimeEntryRepository
	logger *zerolog.Logger
}

func NewTimeEntryService(tx Transactor, repo TimeEntryRepository, logger *zerolog.Logger) *TimeEntryService {
	return &TimeEntryService{tx: tx, repo: repo, logger: logger}
}

func (s *TimeEntryService) List(ctx context.Context) ([]timeentry.Response, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return timeentry.ToResponses(entries), nil
}

func (s *TimeEntryService) ListByDeveloper(ctx context.Context, developerID int64) ([]timeentry.Response, error) {
	entries, err := s.repo.ListByDeveloper(ctx, developerID)
	if err != nil {
		return nil, err
	}
	return timeentry.ToResponses(entries), nil
}

func (s *TimeEntryService) ListByProject(ctx context.Context, projectID int64) ([]timeentry.Response, error) {
	entries, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return timeentry.ToResponses(entries), nil
}

func (s *TimeEntryService) Get(ctx context.Context, id int64) (*timeentry.Response, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := e.ToResponse()
	return &res, nil
}

// Create relies on the foreign keys to reject unknown project or developer
// ids; the violation surfaces as an integrity error.
func (s *TimeEntryService) Create(ctx context.Context, req *timeentry.CreateTimeEntryRequest) (*timeentry.Response, error) {
	var created *timeentry.TimeEntry

	err := s.tx.WithTx(ctx, func(ctx context.Context) (err error) {
		created, err = s.repo.Create(ctx, req.ToTimeEntry())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("time_entry_id", created.ID).
		Int64("project_id", created.ProjectID).
		Int64("developer_id", created.DeveloperID).
		Msg("time entry created")

	res := created.ToResponse()
	return &res, nil
}

func (s *TimeEntryService) Update(ctx context.Context, req *timeentry.UpdateTimeEntryRequest) (*timeentry.Response, error) {
	var updated *timeentry.TimeEntry

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if req.Empty() {
			return model.NoDataError()
		}

		req.Apply(current)
		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	res := updated.ToResponse()
	return &res, nil
}

func (s *TimeEntryService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}
