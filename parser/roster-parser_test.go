package parser

import (
	"strings"
	"testing"

	"p2p/repository"

	"github.com/stretchr/testify/assert"
)

func TestParseRoster(t *testing.T) {
	sheet := strings.Join([]string{
		"name,first_name,last_name,company,role,categories,bio",
		`Alice Martin,Alice,Martin,DataStream,Head of Data,DSI;Responsable ou Expert Data & IA,LLM specialist`,
		`Jean Dupont,Jean,Dupont,SecurIT,RSSI,RSSI ou Expert Cyber,Zero trust`,
	}, "\n")

	participants, err := ParseRoster(strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Len(t, participants, 2)
	assert.Equal(t, "Alice Martin", participants[0].Name)
	assert.Equal(t, []repository.Category{repository.CategoryDSI, repository.CategoryDataIA}, participants[0].CategoryTags())
	assert.Equal(t, []repository.Category{repository.CategoryRSSICyber}, participants[1].CategoryTags())
	assert.NotEmpty(t, participants[0].Avatar)
}

func TestParseRosterWithoutHeader(t *testing.T) {
	sheet := `Jean Dupont,Jean,Dupont,SecurIT,RSSI,RSSI ou Expert Cyber,`

	participants, err := ParseRoster(strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Len(t, participants, 1)
}

func TestParseRosterDropsUnknownCategories(t *testing.T) {
	sheet := `Jean Dupont,Jean,Dupont,SecurIT,RSSI,Plombier;DSI,`

	participants, err := ParseRoster(strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Equal(t, []repository.Category{repository.CategoryDSI}, participants[0].CategoryTags())
}

func TestParseRosterKeepsZeroTagRecords(t *testing.T) {
	// still valid data, just never eligible for pairing
	sheet := `Jean Dupont,Jean,Dupont,SecurIT,RSSI,,`

	participants, err := ParseRoster(strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Len(t, participants, 1)
	assert.Empty(t, participants[0].CategoryTags())
}

func TestParseRosterSkipsBlankNames(t *testing.T) {
	sheet := ",,,,,," + "\n" + `Jean Dupont,Jean,Dupont,SecurIT,RSSI,DSI,`

	participants, err := ParseRoster(strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Len(t, participants, 1)
}
