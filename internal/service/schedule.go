package service

import (
	"context"

	"github.com/ffc/club/api/internal/model"
)

// ScheduleService derives the fixtures view: upcoming matches, past
// results, and the training calendar.
type ScheduleService struct {
	matchRepo    MatchRepository
	trainingRepo TrainingRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(matchRepo MatchRepository, trainingRepo TrainingRepository) *ScheduleService {
	return &ScheduleService{
		matchRepo:    matchRepo,
		trainingRepo: trainingRepo,
	}
}

// Schedule is the derived fixtures state
type Schedule struct {
	// Upcoming matches, earliest first
	Upcoming []*model.Match `json:"upcoming"`
	// Past results, most recent first
	Results []*model.Match `json:"results"`
	// Training sessions, earliest first
	Training []*model.TrainingSession `json:"training"`
}

// Build assembles the schedule from the current collections
func (s *ScheduleService) Build(ctx context.Context) (*Schedule, error) {
	matches, err := s.matchRepo.ListByDateDesc(ctx)
	if err != nil {
		return nil, err
	}

	training, err := s.trainingRepo.ListByDateAsc(ctx)
	if err != nil {
		return nil, err
	}

	schedule := &Schedule{
		Upcoming: []*model.Match{},
		Results:  []*model.Match{},
		Training: training,
	}
	if schedule.Training == nil {
		schedule.Training = []*model.TrainingSession{}
	}

	// Matches arrive newest first. Results keep that order; upcoming
	// flips to earliest first. Published gates the score so a stored
	// score on an upcoming match never reaches the response.
	for _, m := range matches {
		if m.IsPast {
			schedule.Results = append(schedule.Results, m.Published())
		} else {
			schedule.Upcoming = append(schedule.Upcoming, m.Published())
		}
	}
	for i, j := 0, len(schedule.Upcoming)-1; i < j; i, j = i+1, j-1 {
		schedule.Upcoming[i], schedule.Upcoming[j] = schedule.Upcoming[j], schedule.Upcoming[i]
	}

	return schedule, nil
}
