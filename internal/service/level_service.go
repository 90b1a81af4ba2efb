package service

import (
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/repository"
	"quiz_platform_backend/internal/util"

	"gorm.io/gorm"
)

// LevelService manages the user progression chain. The chain is seeded at
// startup; this service only covers admin adjustments to it.
type LevelService struct {
	LevelRepo *repository.LevelRepository
}

func NewLevelService(levelRepo *repository.LevelRepository) *LevelService {
	return &LevelService{LevelRepo: levelRepo}
}

func (s *LevelService) GetChain() ([]model.UserLevel, error) {
	return s.LevelRepo.FindChain()
}

type LevelRequest struct {
	Level       uint   `json:"level" binding:"required"`
	ToLevelUp   uint   `json:"toLevelUp" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// AppendLevel adds one link to the end of the chain. Inserting in the
// middle would reorder existing users' levels, so only appending is allowed.
func (s *LevelService) AppendLevel(req LevelRequest) (*model.UserLevel, error) {
	chain, err := s.LevelRepo.FindChain()
	if err != nil {
		return nil, err
	}

	level := &model.UserLevel{
		Level:       req.Level,
		ToLevelUp:   req.ToLevelUp,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if len(chain) > 0 {
		last := chain[len(chain)-1]
		if req.Level != last.Level+1 {
			return nil, util.ErrInvalidLevelChain
		}
		if req.ToLevelUp <= last.ToLevelUp {
			return nil, util.ErrInvalidLevelChain
		}
		prevID := last.ID
		level.PrevLevelID = &prevID
	}

	if err := s.LevelRepo.Create(level); err != nil {
		return nil, err
	}
	return level, nil
}

// DeleteLevel removes the last link of the chain. Deleting from the middle
// would orphan users sitting on later levels, so only the tail is deletable.
func (s *LevelService) DeleteLevel(id uint) error {
	chain, err := s.LevelRepo.FindChain()
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return util.ErrLevelNotFound
	}

	last := chain[len(chain)-1]
	if last.ID != id {
		return util.ErrInvalidLevelChain
	}
	return s.LevelRepo.Delete(id)
}

// UpdateLevel edits one link of the chain. The new threshold must still fit
// between its neighbors, otherwise promotion would skip or repeat levels.
func (s *LevelService) UpdateLevel(id uint, req LevelRequest) (*model.UserLevel, error) {
	level, err := s.LevelRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrLevelNotFound
		}
		return nil, err
	}

	chain, err := s.LevelRepo.FindChain()
	if err != nil {
		return nil, err
	}
	if !thresholdFitsChain(chain, id, req.ToLevelUp) {
		return nil, util.ErrInvalidLevelChain
	}

	level.Description = req.Description
	level.ToLevelUp = req.ToLevelUp
	if req.ImageURL != "" {
		level.ImageURL = req.ImageURL
	}

	if err := s.LevelRepo.Update(level); err != nil {
		return nil, err
	}
	return level, nil
}

// thresholdFitsChain reports whether setting level id's threshold to
// toLevelUp keeps the chain's thresholds strictly increasing.
func thresholdFitsChain(chain []model.UserLevel, id, toLevelUp uint) bool {
	for i := range chain {
		if chain[i].ID != id {
			continue
		}
		if i > 0 && chain[i-1].ToLevelUp >= toLevelUp {
			return false
		}
		if i < len(chain)-1 && chain[i+1].ToLevelUp <= toLevelUp {
			return false
		}
		return true
	}
	return false
}
