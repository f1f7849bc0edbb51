package service

import (
	"context"
	"strings"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/repository"
)

// defaultItemKeys seed every fresh checklist, localized at creation time.
var defaultItemKeys = []string{
	"passport",
	"tickets",
	"boarding_pass",
	"hotel_reservation",
	"travel_insurance",
}

type ChecklistService struct {
	repo repository.ChecklistRepository
}

func NewChecklistService(repo repository.ChecklistRepository) *ChecklistService {
	return &ChecklistService{repo: repo}
}

func defaultItems(lang model.Language) []model.ChecklistItem {
	items := make([]model.ChecklistItem, 0, len(defaultItemKeys))
	for _, key := range defaultItemKeys {
		items = append(items, model.ChecklistItem{
			Name:   i18n.T(lang, key),
			Status: model.ItemStatusPending,
		})
	}
	return items
}

// GetOrCreate returns the chat's checklist, seeding the defaults on first
// use.
func (s *ChecklistService) GetOrCreate(ctx context.Context, chatID int64, lang model.Language) (*model.Checklist, error) {
	checklist, err := s.repo.Find(ctx, chatID)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if checklist != nil {
		return checklist, nil
	}

	checklist = &model.Checklist{ChatID: chatID, Items: defaultItems(lang)}
	if err := s.repo.Create(ctx, checklist); err != nil {
		return nil, apperrors.Database(err)
	}
	return checklist, nil
}

// StartNew discards the chat's checklist and reseeds the defaults.
func (s *ChecklistService) StartNew(ctx context.Context, chatID int64, lang model.Language) (*model.Checklist, error) {
	checklist := &model.Checklist{ChatID: chatID, Items: defaultItems(lang)}
	if err := s.repo.Replace(ctx, chatID, checklist.Items); err != nil {
		return nil, apperrors.Database(err)
	}
	return checklist, nil
}

// AddItem appends a user-named item; duplicate names are a no-op.
func (s *ChecklistService) AddItem(ctx context.Context, chatID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.MalformedInput("empty item name")
	}
	item := model.ChecklistItem{Name: name, Status: model.ItemStatusPending}
	if err := s.repo.AddItem(ctx, chatID, item); err != nil {
		return apperrors.Database(err)
	}
	return nil
}

func (s *ChecklistService) RemoveItem(ctx context.Context, chatID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.MalformedInput("empty item name")
	}
	if err := s.repo.RemoveItem(ctx, chatID, name); err != nil {
		return apperrors.Database(err)
	}
	return nil
}

func (s *ChecklistService) SetStatus(ctx context.Context, chatID int64, name string, status model.ItemStatus) error {
	if err := s.repo.SetStatus(ctx, chatID, name, status); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
