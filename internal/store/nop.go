package store

import "github.com/azuresoup/hh-skills-parser/internal/model"

// NopStore is a no-op store used in dry-run mode. It never persists anything,
// so every relevant posting is processed as new on each run.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Exists(externalID string) (bool, error)    { return false, nil }
func (s *NopStore) Insert(p model.Posting) error              { return nil }
func (s *NopStore) SkillBlobs() ([]string, error)             { return nil, nil }
func (s *NopStore) Descriptions() ([]string, error)           { return nil, nil }
func (s *NopStore) Counts() (model.StoreCounts, error)        { return model.StoreCounts{}, nil }
