package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/models"
)

type settingsUpdateInput struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type listReplaceInput struct {
	Entries json.RawMessage `json:"entries"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	lists, err := handler.settingsService.GetLists()
	if err != nil {
		return handler.respondError(c, err, "failed to load settings")
	}
	return c.JSON(lists)
}

// PostSettings accepts {type, data} where data is either a list of codes or a
// list of {code, description} objects.
func (handler *Handler) PostSettings(c *fiber.Ctx) error {
	input := settingsUpdateInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	return handler.replaceList(c, input.Type, input.Data)
}

func (handler *Handler) ReplaceSetting(c *fiber.Ctx) error {
	input := listReplaceInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	return handler.replaceList(c, c.Params("name"), input.Entries)
}

func (handler *Handler) replaceList(c *fiber.Ctx, name string, raw json.RawMessage) error {
	entries, err := decodeConfigurationEntries(raw)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	list, err := handler.settingsService.ReplaceList(name, entries)
	if err != nil {
		return handler.respondError(c, err, "Erreur lors de la mise à jour des paramètres")
	}
	return c.JSON(fiber.Map{
		"message": "Paramètres mis à jour avec succès",
		"list":    list,
	})
}

func decodeConfigurationEntries(raw json.RawMessage) ([]models.ConfigurationEntry, error) {
	if len(raw) == 0 {
		return nil, errors.New("data is required")
	}

	var codes []string
	if err := json.Unmarshal(raw, &codes); err == nil {
		entries := make([]models.ConfigurationEntry, 0, len(codes))
		for _, code := range codes {
			entries = append(entries, models.ConfigurationEntry{Code: code})
		}
		return entries, nil
	}

	var entries []models.ConfigurationEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.New("data must be a list of codes or of {code, description} objects")
	}
	return entries, nil
}
