package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"p2p/repository"
)

// Expected columns of an imported roster sheet. The header row is optional.
var rosterColumns = []string{"name", "first_name", "last_name", "company", "role", "categories", "bio"}

// ParseRoster reads a semicolon-tagged CSV export into participant records.
// Unknown category labels are dropped from the tag set; a record may end up
// with zero tags, which is valid data but will never be scheduled.
func ParseRoster(reader io.Reader) ([]*repository.Participant, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = len(rosterColumns)
	csvReader.TrimLeadingSpace = true

	participants := make([]*repository.Participant, 0)
	line := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse roster line %d: %v", line+1, err)
		}
		line++
		if line == 1 && isHeaderRow(record) {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		participants = append(participants, &repository.Participant{
			Name:       name,
			FirstName:  strings.TrimSpace(record[1]),
			LastName:   strings.TrimSpace(record[2]),
			Company:    strings.TrimSpace(record[3]),
			Role:       strings.TrimSpace(record[4]),
			Categories: parseCategories(record[5]),
			Bio:        strings.TrimSpace(record[6]),
			Avatar:     fmt.Sprintf("https://picsum.photos/seed/%s/200", strings.ReplaceAll(name, " ", "")),
		})
	}
	return participants, nil
}

func isHeaderRow(record []string) bool {
	return strings.EqualFold(strings.TrimSpace(record[0]), rosterColumns[0])
}

func parseCategories(field string) []string {
	categories := make([]string, 0)
	for _, label := range strings.Split(field, ";") {
		category := repository.Category(strings.TrimSpace(label))
		if repository.IsValidCategory(category) {
			categories = append(categories, string(category))
		}
	}
	return categories
}
