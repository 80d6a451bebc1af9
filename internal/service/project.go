package service

import (
	"context"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/model/project"
	"github.com/rs/zerolog"
)

type ProjectService struct {
	tx     Transactor
	repo   ProjectRepository
	logger *zerolog.Logger
}

func NewProjectService(tx Transactor, repo ProjectRepository, logger *zerolog.Logger) *ProjectService {
	return &ProjectService{tx: tx, repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]project.Response, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return project.ToResponses(projects), nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*project.Response, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := p.ToResponse()
	return &res, nil
}

func (s *ProjectService) Create(ctx context.Context, req *project.CreateProjectRequest) (*project.Response, error) {
	var created *project.Project

	err := s.tx.WithTx(ctx, func(ctx context.Context) (err error) {
		created, err = s.repo.Create(ctx, req.ToProject())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("project_id", created.ID).Msg("project created")

	res := created.ToResponse()
	return &res, nil
}

func (s *ProjectService) Update(ctx context.Context, req *project.UpdateProjectRequest) (*project.Response, error) {
	var updated *project.Project

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

// Delete removes the project and, through the foreign key, its time entries.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}
