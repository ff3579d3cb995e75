package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/models"
)

const minimumGroupSize = 2

// InstrumentDemand is one line of the desired group composition. Count is
// validated but does not shape the buckets.
type InstrumentDemand struct {
	Instrument string `json:"instrument" validate:"required"`
	Count      int    `json:"count" validate:"min=1"`
}

type SuggestionFilter struct {
	Instrument  Optional[string]
	Level       Optional[string]
	DayOfWeek   Optional[int]
	StartTime   Optional[string]
	EndTime     Optional[string]
	Instruments []InstrumentDemand
}

type SuggestedStudent struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Instrument string `json:"instrument"`
	Level      string `json:"level"`
}

type GroupSuggestion struct {
	DayOfWeek     int                `json:"dayOfWeek"`
	StartTime     string             `json:"startTime"`
	EndTime       string             `json:"endTime"`
	Students      []SuggestedStudent `json:"students"`
	SuggestedName string             `json:"suggestedName"`
}

type GroupingAvailabilityRepository interface {
	ListWithStudents(query db.AvailabilityQuery) ([]models.AvailabilityWithStudent, error)
}

type GroupingGroupRepository interface {
	Create(group *models.Group) error
}

type GroupingService struct {
	availabilities GroupingAvailabilityRepository
	groups         GroupingGroupRepository
}

func NewGroupingService(availabilities GroupingAvailabilityRepository, groups GroupingGroupRepository) *GroupingService {
	return &GroupingService{
		availabilities: availabilities,
		groups:         groups,
	}
}

type slotKey struct {
	dayOfWeek int
	startTime string
	endTime   string
}

// SuggestGroups buckets student availabilities matching filter by their exact
// (day, start, end) slot and proposes one group per slot shared by at least
// two distinct students.
func (service *GroupingService) SuggestGroups(filter SuggestionFilter) ([]GroupSuggestion, error) {
	if err := validateSuggestionFilter(filter); err != nil {
		return nil, err
	}

	rows, err := service.availabilities.ListWithStudents(suggestionQuery(filter))
	if err != nil {
		return nil, classifyStorageError("load availabilities", err)
	}

	buckets := make(map[slotKey][]SuggestedStudent)
	seen := make(map[slotKey]map[string]struct{})
	order := make([]slotKey, 0)
	for _, row := range rows {
		if !filterMatchesRow(filter, row) {
			continue
		}
		key := slotKey{dayOfWeek: row.DayOfWeek, startTime: row.StartTime, endTime: row.EndTime}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
			seen[key] = make(map[string]struct{})
		}
		if _, duplicate := seen[key][row.UserID]; duplicate {
			continue
		}
		seen[key][row.UserID] = struct{}{}
		buckets[key] = append(buckets[key], SuggestedStudent{
			ID:         row.UserID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Instrument: row.Instrument,
			Level:      row.Level,
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		left, right := order[i], order[j]
		if left.dayOfWeek != right.dayOfWeek {
			return left.dayOfWeek < right.dayOfWeek
		}
		if left.startTime != right.startTime {
			return left.startTime < right.startTime
		}
		return left.endTime < right.endTime
	})

	suggestions := make([]GroupSuggestion, 0)
	for _, key := range order {
		students := buckets[key]
		if len(students) < minimumGroupSize {
			continue
		}
		suggestions = append(suggestions, GroupSuggestion{
			DayOfWeek:     key.dayOfWeek,
			StartTime:     key.startTime,
			EndTime:       key.endTime,
			Students:      students,
			SuggestedName: SuggestedGroupName(students[0], key.startTime),
		})
	}
	return suggestions, nil
}

// AcceptSuggestion persists the suggestion as a group named after it. Students
// are not attached to the group.
func (service *GroupingService) AcceptSuggestion(suggestion GroupSuggestion) (models.Group, error) {
	if len(suggestion.Students) == 0 {
		return models.Group{}, newValidationError("students", "must contain at least one student")
	}
	if !models.IsValidDayOfWeek(suggestion.DayOfWeek) {
		return models.Group{}, newValidationError("dayOfWeek", "must be between 1 and 6")
	}
	if !IsClockTime(suggestion.StartTime) {
		return models.Group{}, newValidationError("startTime", "must use the HH:MM format")
	}
	if !IsClockTime(suggestion.EndTime) {
		return models.Group{}, newValidationError("endTime", "must use the HH:MM format")
	}

	name := suggestion.SuggestedName
	if name == "" {
		name = SuggestedGroupName(suggestion.Students[0], suggestion.StartTime)
	}
	group := models.Group{
		Name:      name,
		DayOfWeek: suggestion.DayOfWeek,
		StartTime: suggestion.StartTime,
		EndTime:   suggestion.EndTime,
		Level:     suggestion.Students[0].Level,
	}
	if err := service.groups.Create(&group); err != nil {
		return models.Group{}, classifyStorageError("create group", err)
	}
	return group, nil
}

func SuggestedGroupName(first SuggestedStudent, startTime string) string {
	return fmt.Sprintf("Groupe %s %s - %s", first.Instrument, first.Level, startTime)
}

func validateSuggestionFilter(filter SuggestionFilter) error {
	if day, ok := filter.DayOfWeek.Get(); ok && !models.IsValidDayOfWeek(day) {
		return newValidationError("dayOfWeek", "must be between 1 and 6")
	}
	if start, ok := filter.StartTime.Get(); ok && !IsClockTime(start) {
		return newValidationError("startTime", "must use the HH:MM format")
	}
	if end, ok := filter.EndTime.Get(); ok && !IsClockTime(end) {
		return newValidationError("endTime", "must use the HH:MM format")
	}
	for index, demand := range filter.Instruments {
		if err := validateInput(demand); err != nil {
			var validationErr *ValidationError
			if errors.As(err, &validationErr) {
				validationErr.Field = fmt.Sprintf("instruments[%d].%s", index, validationErr.Field)
			}
			return err
		}
	}
	return nil
}

func suggestionQuery(filter SuggestionFilter) db.AvailabilityQuery {
	query := db.AvailabilityQuery{
		Instrument: filter.Instrument.pointer(),
		Level:      filter.Level.pointer(),
		DayOfWeek:  filter.DayOfWeek.pointer(),
		StartTime:  filter.StartTime.pointer(),
		EndTime:    filter.EndTime.pointer(),
	}
	for _, demand := range filter.Instruments {
		query.Instruments = append(query.Instruments, demand.Instrument)
	}
	return query
}

// filterMatchesRow applies the same conjunction as suggestionQuery in memory.
func filterMatchesRow(filter SuggestionFilter, row models.AvailabilityWithStudent) bool {
	if !filter.Instrument.Matches(row.Instrument) ||
		!filter.Level.Matches(row.Level) ||
		!filter.DayOfWeek.Matches(row.DayOfWeek) ||
		!filter.StartTime.Matches(row.StartTime) ||
		!filter.EndTime.Matches(row.EndTime) {
		return false
	}
	if len(filter.Instruments) == 0 {
		return true
	}
	for _, demand := range filter.Instruments {
		if demand.Instrument == row.Instrument {
			return true
		}
	}
	return false
}
