package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

type suggestionRequest struct {
	Instrument  *string                     `json:"instrument"`
	Level       *string                     `json:"level"`
	DayOfWeek   *int                        `json:"dayOfWeek"`
	StartTime   *string                     `json:"startTime"`
	EndTime     *string                     `json:"endTime"`
	Instruments []services.InstrumentDemand `json:"instruments"`
}

func (request suggestionRequest) filter() services.SuggestionFilter {
	filter := services.SuggestionFilter{
		Instrument:  optionalText(request.Instrument),
		Level:       optionalText(request.Level),
		DayOfWeek:   services.Unconstrained[int](),
		StartTime:   optionalText(request.StartTime),
		EndTime:     optionalText(request.EndTime),
		Instruments: request.Instruments,
	}
	if request.DayOfWeek != nil {
		filter.DayOfWeek = services.EqualTo(*request.DayOfWeek)
	}
	return filter
}

// optionalText treats a missing or blank value as no constraint.
func optionalText(value *string) services.Optional[string] {
	if value == nil || strings.TrimSpace(*value) == "" {
		return services.Unconstrained[string]()
	}
	return services.EqualTo(strings.TrimSpace(*value))
}

func (handler *Handler) SuggestGroups(c *fiber.Ctx) error {
	input := suggestionRequest{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	suggestions, err := handler.groupingService.SuggestGroups(input.filter())
	if err != nil {
		return handler.respondError(c, err, "Erreur lors de la génération des suggestions")
	}
	return c.JSON(suggestions)
}

func (handler *Handler) AcceptSuggestion(c *fiber.Ctx) error {
	input := services.GroupSuggestion{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	group, err := handler.groupingService.AcceptSuggestion(input)
	if err != nil {
		return handler.respondError(c, err, "failed to create group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (handler *Handler) ListGroups(c *fiber.Ctx) error {
	groups, err := handler.groupService.ListGroups()
	if err != nil {
		return handler.respondError(c, err, "failed to load groups")
	}
	return c.JSON(groups)
}

func (handler *Handler) CreateGroup(c *fiber.Ctx) error {
	input := services.GroupInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	group, err := handler.groupService.CreateGroup(input)
	if err != nil {
		return handler.respondError(c, err, "failed to create group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}
