package service

import (
	"coursely_backend/internal/repository"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
	}
}

// GetUserProgress 返回用户已选全部课程的逐课时进度
func (s *ProgressService) GetUserProgress(userID uint) ([]repository.ProgressRow, error) {
	rows, err := s.ProgressRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.ProgressRow{}
	}
	return rows, nil
}

func (s *ProgressService) SetLessonCompletion(userID, lessonID uint, isCompleted bool) error {
	return s.ProgressRepo.SetCompletion(userID, lessonID, isCompleted)
}
