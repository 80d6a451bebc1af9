package service

import (
	"context"
	"time"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/developer"
	"github.com/rs/zerolog"
)

var emailTakenCode = "EMAIL_ALREADY_REGISTERED"

const welcomeEnqueueTimeout = 2 * time.Second

func emailTakenError() error {
	return errs.NewBadRequestError("Email already registered", true, &emailTakenCode, []errs.FieldError{
		{Field: "email", Error: "is already registered"},
	})
}

type DeveloperService struct {
	tx       Transactor
	repo     DeveloperRepository
	notifier WelcomeNotifier
	logger   *zerolog.Logger

	enqueueTimeout time.Duration
}

// NewDeveloperService builds the service. notifier may be nil.
func NewDeveloperService(tx Transactor, repo DeveloperRepository, notifier WelcomeNotifier, logger *zerolog.Logger) *DeveloperService {
	return &DeveloperService{
		tx:             tx,
		repo:           repo,
		notifier:       notifier,
		logger:         logger,
		enqueueTimeout: welcomeEnqueueTimeout,
	}
}

func (s *DeveloperService) List(ctx context.Context) ([]developer.Response, error) {
	developers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return developer.ToResponses(developers), nil
}

func (s *DeveloperService) Get(ctx context.Context, id int64) (*developer.Response, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := d.ToResponse()
	return &res, nil
}

// Create rejects a duplicate email with 400 and, once committed, queues the
// welcome email. The enqueue gets its own short deadline, detached from the
// request. A queueing failure is logged and does not fail the request.
func (s *DeveloperService) Create(ctx context.Context, req *developer.CreateDeveloperRequest) (*developer.Response, error) {
	var created *developer.Developer

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.repo.EmailExists(ctx, req.Email)
		if err != nil {
			return err
		}
		if exists {
			return emailTakenError()
		}

		created, err = s.repo.Create(ctx, req.ToDeveloper())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("developer_id", created.ID).
		Msg("developer created")

	if s.notifier != nil {
		enqueueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.enqueueTimeout)
		defer cancel()

		if err := s.notifier.EnqueueDeveloperWelcome(enqueueCtx, created.Email, created.Name); err != nil {
			s.logger.Warn().
				Err(err).
				Int64("developer_id", created.ID).
				Msg("failed to enqueue welcome email")
		}
	}

	res := created.ToResponse()
	return &res, nil
}

// Update applies a partial update. A changed email is checked against the
// other developers first.
func (s *DeveloperService) Update(ctx context.Context, req *developer.UpdateDeveloperRequest) (*developer.Response, error) {
	var updated *developer.Developer

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if req.Empty() {
			return model.NoDataError()
		}

		if req.Email != nil && *req.Email != current.Email {
			exists, err := s.repo.EmailExists(ctx, *req.Email)
			if err != nil {
				return err
			}
			if exists {
				return emailTakenError()
			}
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

// Delete removes the developer and, through the foreign key, its time entries.
func (s *DeveloperService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("developer_id", id).Msg("developer deleted")
	return nil
}
