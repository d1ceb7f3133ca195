package lineup

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/internal/metrics"
	"github.com/DhavalSuthar-24/musclemyths/internal/registration"
	"github.com/DhavalSuthar-24/musclemyths/pkg/apperror"
)

type EventLookup interface {
	GetEventByID(id uint) (*event.Event, error)
}

type RegistrationSource interface {
	FindByEvent(eventID uint) ([]registration.Registration, error)
}

type AthleteLookup interface {
	GetAthletesByIDs(ids []uint) (map[uint]*athlete.Athlete, error)
}

type LineupService struct {
	repo          LineupRepository
	events        EventLookup
	registrations RegistrationSource
	athletes      AthleteLookup
	metrics       metrics.Recorder
}

func NewLineupService(repo LineupRepository, events EventLookup, regs RegistrationSource, athletes AthleteLookup, rec metrics.Recorder) *LineupService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &LineupService{repo: repo, events: events, registrations: regs, athletes: athletes, metrics: rec}
}

func (s *LineupService) requireEvent(eventID uint) error {
	ev, err := s.events.GetEventByID(eventID)
	if err != nil {
		return fmt.Errorf("load event %d: %w", eventID, err)
	}
	if ev == nil {
		return apperror.NotFound("Event %d not found", eventID)
	}
	return nil
}

func (s *LineupService) find(ctx context.Context, eventID uint) (*Lineup, error) {
	l, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load lineup of event %d: %w", eventID, err)
	}
	if l == nil {
		return nil, apperror.NotFound("Lineup for event %d not found", eventID)
	}
	return l, nil
}

// Generate builds the startlist from the event's registrations. An existing
// lineup is never overwritten.
func (s *LineupService) Generate(ctx context.Context, eventID uint) (*Lineup, error) {
	if err := s.requireEvent(eventID); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load lineup of event %d: %w", eventID, err)
	}
	if existing != nil {
		return nil, apperror.Conflict(msgLineupExists)
	}

	regs, err := s.registrations.FindByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("load registrations of event %d: %w", eventID, err)
	}
	entries := Flatten(regs)
	if len(entries) == 0 {
		return nil, apperror.Validation("No registrations for this event")
	}

	l := &Lineup{EventID: eventID, Items: Order(entries)}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	s.metrics.LineupGenerated()
	log.Printf("lineup generated: event=%d registrations=%d items=%d", eventID, len(regs), len(l.Items))
	return l, nil
}

// Replace swaps the whole item list for the one given, renumbered by
// position.
func (s *LineupService) Replace(ctx context.Context, eventID uint, req ReplaceRequest) (*Lineup, error) {
	items := make([]Item, len(req.Items))
	for i, in := range req.Items {
		category := strings.TrimSpace(in.Category)
		if in.AthleteID == 0 {
			return nil, apperror.Validation("Item %d has no athlete", i+1)
		}
		if category == "" {
			return nil, apperror.Validation("Item %d has no category", i+1)
		}
		display := true
		if in.IsDisplay != nil {
			display = *in.IsDisplay
		}
		items[i] = Item{
			AthleteID: in.AthleteID,
			Category:  category,
			IsDisplay: display,
			IsRetired: in.IsRetired,
			GroupID:   strings.TrimSpace(in.GroupID),
		}
	}
	for i, g := range req.MergedGroups {
		if strings.TrimSpace(g.GroupID) == "" {
			return nil, apperror.Validation("Merged group %d has no group_id", i+1)
		}
	}

	l, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}
	l.Items = Renumber(items)
	if req.MergedGroups != nil {
		l.MergedGroups = req.MergedGroups
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("save lineup of event %d: %w", eventID, err)
	}
	return l, nil
}

func (s *LineupService) Delete(ctx context.Context, eventID uint) error {
	removed, err := s.repo.DeleteByEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("delete lineup of event %d: %w", eventID, err)
	}
	if !removed {
		return apperror.NotFound("Lineup for event %d not found", eventID)
	}
	return nil
}

// Get returns the lineup in running order with athletes joined. A non-empty
// category keeps only that category's items.
func (s *LineupService) Get(ctx context.Context, eventID uint, category string) (*View, error) {
	l, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	items := ByOrder(l.Items)
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.AthleteID)
	}
	athletes, err := s.athletes.GetAthletesByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("load athletes: %w", err)
	}

	view := &View{
		ID:           l.ID,
		EventID:      l.EventID,
		Items:        []ItemView{},
		MergedGroups: l.MergedGroups,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if view.MergedGroups == nil {
		view.MergedGroups = []MergedGroup{}
	}
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		iv := ItemView{Item: it}
		if a, ok := athletes[it.AthleteID]; ok {
			sum := a.Summary()
			iv.Athlete = &sum
		}
		view.Items = append(view.Items, iv)
	}
	return view, nil
}

// Categories lists the lineup's categories in running order.
func (s *LineupService) Categories(ctx context.Context, eventID uint) ([]string, error) {
	l, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}
	cats := Categories(l.Items)
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}
