package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
	ExportFormatXLSX = "xlsx"

	exportSheetName = "Disponibilités"
)

var ExportCSVHeaders = []string{
	"Jour",
	"Début",
	"Fin",
	"Nom",
	"Prénom",
	"Email",
	"Instrument",
	"Niveau",
}

var dayNames = map[int]string{
	1: "Lundi",
	2: "Mardi",
	3: "Mercredi",
	4: "Jeudi",
	5: "Vendredi",
	6: "Samedi",
}

type ExportAvailabilityReader interface {
	ListWithStudents(query db.AvailabilityQuery) ([]models.AvailabilityWithStudent, error)
}

type ExportService struct {
	availabilities ExportAvailabilityReader
	now            func() time.Time
}

type ExportFile struct {
	ContentType string
	Filename    string
	Data        []byte
}

func NewExportService(availabilities ExportAvailabilityReader) *ExportService {
	return &ExportService{
		availabilities: availabilities,
		now:            time.Now,
	}
}

func DayName(dayOfWeek int) string {
	if name, ok := dayNames[dayOfWeek]; ok {
		return name
	}
	return strconv.Itoa(dayOfWeek)
}

func (service *ExportService) Export(format string) (ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatJSON && format != ExportFormatXLSX {
		return ExportFile{}, newValidationError("format", "must be one of csv json xlsx")
	}

	rows, err := service.availabilities.ListWithStudents(db.AvailabilityQuery{})
	if err != nil {
		return ExportFile{}, classifyStorageError("list availabilities", err)
	}
	now := service.now().UTC()

	var data []byte
	var contentType string
	switch format {
	case ExportFormatJSON:
		data, err = buildAvailabilityJSON(rows, now)
		contentType = "application/json"
	case ExportFormatXLSX:
		data, err = buildAvailabilityXLSX(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		data, err = buildAvailabilityCSV(rows)
		contentType = "text/csv"
	}
	if err != nil {
		return ExportFile{}, fmt.Errorf("build %s export: %w", format, err)
	}

	return ExportFile{
		ContentType: contentType,
		Filename:    fmt.Sprintf("solfege-availabilities-%s.%s", now.Format("2006-01-02"), format),
		Data:        data,
	}, nil
}

func availabilityColumns(row models.AvailabilityWithStudent) []string {
	return []string{
		DayName(row.DayOfWeek),
		row.StartTime,
		row.EndTime,
		row.LastName,
		row.FirstName,
		row.Email,
		row.Instrument,
		row.Level,
	}
}

func buildAvailabilityCSV(rows []models.AvailabilityWithStudent) ([]byte, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := writer.Write(availabilityColumns(row)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func buildAvailabilityJSON(rows []models.AvailabilityWithStudent, now time.Time) ([]byte, error) {
	return json.MarshalIndent(map[string]any{
		"exportedAt":     now.Format(time.RFC3339),
		"availabilities": rows,
	}, "", "  ")
}

func buildAvailabilityXLSX(rows []models.AvailabilityWithStudent) ([]byte, error) {
	workbook := excelize.NewFile()
	defer func() {
		_ = workbook.Close()
	}()

	defaultSheet := workbook.GetSheetName(0)
	if err := workbook.SetSheetName(defaultSheet, exportSheetName); err != nil {
		return nil, err
	}

	if err := workbook.SetSheetRow(exportSheetName, "A1", &ExportCSVHeaders); err != nil {
		return nil, err
	}
	for index, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return nil, err
		}
		columns := availabilityColumns(row)
		if err := workbook.SetSheetRow(exportSheetName, cell, &columns); err != nil {
			return nil, err
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
