package models

import "time"

const (
	ListInstruments = "instruments"
	ListLevels      = "levels"
	ListTeachers    = "teachers"
)

func ConfigurationListNames() []string {
	return []string{ListInstruments, ListLevels, ListTeachers}
}

type ConfigurationEntry struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

// ConfigurationList is an admin-editable enumeration stored as a row keyed by
// its name.
type ConfigurationList struct {
	Name      string               `gorm:"primaryKey" json:"name"`
	Entries   []ConfigurationEntry `gorm:"serializer:json;not null" json:"entries"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func (list ConfigurationList) Codes() []string {
	codes := make([]string, 0, len(list.Entries))
	for _, entry := range list.Entries {
		codes = append(codes, entry.Code)
	}
	return codes
}

func (list ConfigurationList) Contains(code string) bool {
	for _, entry := range list.Entries {
		if entry.Code == code {
			return true
		}
	}
	return false
}

// DefaultConfigurationList returns the built-in entries used until an
// administrator saves a list of the same name.
func DefaultConfigurationList(name string) (ConfigurationList, bool) {
	var entries []ConfigurationEntry
	switch name {
	case ListInstruments:
		entries = codesToEntries("Violon", "Alto", "Clarinette", "Violoncelle", "Contrebasse", "Piano", "Hautbois")
	case ListLevels:
		entries = []ConfigurationEntry{
			{Code: "3CD1", Description: "CEM 1ère année"},
			{Code: "3CD2", Description: "CEM 2ème année"},
			{Code: "3CD3", Description: "CEM 3ème année"},
			{Code: "3CD4", Description: "CEM 4ème année"},
			{Code: "3CRStage", Description: "Stage DEM"},
			{Code: "3CR1", Description: "DEM 1ère année"},
			{Code: "3CR2", Description: "DEM 2ème année"},
			{Code: "3CR3", Description: "DEM 3ème année"},
			{Code: "3CR4", Description: "DEM 4ème année"},
			{Code: "PPES1", Description: "PPES 1ère année"},
			{Code: "PPES2", Description: "PPES 2ème année"},
			{Code: "PPES3", Description: "PPES 3ème année"},
			{Code: "Contrat Niveau CEM", Description: "Hors Cursus niveau CEM"},
			{Code: "Contrat Niveau DEM", Description: "Hors Cursus niveau DEM"},
		}
	case ListTeachers:
		entries = codesToEntries("J. MEUNIER", "F. VOGHT")
	default:
		return ConfigurationList{}, false
	}
	return ConfigurationList{Name: name, Entries: entries}, true
}

func codesToEntries(codes ...string) []ConfigurationEntry {
	entries := make([]ConfigurationEntry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, ConfigurationEntry{Code: code})
	}
	return entries
}
