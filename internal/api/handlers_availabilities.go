package api

import (
	"github.com/gofiber/fiber/v2"
)

type availabilityView struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Instrument string `json:"instrument"`
	Level      string `json:"level"`
	DayOfWeek  int    `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func (handler *Handler) ListAvailabilities(c *fiber.Ctx) error {
	rows, err := handler.availabilityService.ListAvailabilities()
	if err != nil {
		return handler.respondError(c, err, "failed to load availabilities")
	}

	views := make([]availabilityView, 0, len(rows))
	for _, row := range rows {
		views = append(views, availabilityView{
			ID:         row.ID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Instrument: row.Instrument,
			Level:      row.Level,
			DayOfWeek:  row.DayOfWeek,
			StartTime:  row.StartTime,
			EndTime:    row.EndTime,
		})
	}
	return c.JSON(views)
}

func (handler *Handler) ExportAvailabilities(c *fiber.Ctx) error {
	file, err := handler.exportService.Export(c.Query("format"))
	if err != nil {
		return handler.respondError(c, err, "failed to build export")
	}

	setExportAttachmentHeaders(c, file.ContentType, file.Filename)
	return c.Send(file.Data)
}
