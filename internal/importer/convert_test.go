package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/planview/internal/catalog"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvert_SortsTimeline(t *testing.T) {
	schema := validMinimalSchema()
	schema.Timeline = []domain.TimelineWeek{
		{Week: 3, Title: "C"},
		{Week: 1, Title: "A"},
		{Week: 2, Title: "B"},
	}

	plan := Convert(schema)

	require.Len(t, plan.Timeline, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{plan.Timeline[0].Week, plan.Timeline[1].Week, plan.Timeline[2].Week})
	assert.Equal(t, 3, schema.Timeline[0].Week, "schema must not be reordered")
	assert.Equal(t, "Web Platform", plan.Title)
}

func TestNormalizeShortID(t *testing.T) {
	assert.Equal(t, "WEB01", NormalizeShortID("  web01 "))
}

func TestLoadImportSchema_JSON(t *testing.T) {
	path := writeFile(t, "plan.json", `{
		"short_id": "WEB01",
		"title": "Web Platform",
		"objectives": {"specific": ["Ship the API"]},
		"timeline": [
			{"week": 2, "title": "Build", "tasks": ["API"], "progress": 40},
			{"week": 1, "title": "Setup", "tasks": ["Repo", "CI"], "progress": 100}
		]
	}`)

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "WEB01", schema.ShortID)
	assert.Equal(t, "Web Platform", schema.Title)
	require.Len(t, schema.Timeline, 2)
	assert.Equal(t, 40, schema.Timeline[0].Progress)
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestLoadImportSchema_YAML(t *testing.T) {
	path := writeFile(t, "plan.yml", `
short_id: web02
title: Web Platform
subtitle: Stage
objectives:
  general: Deliver
  specific:
    - Ship the API
timeline:
  - week: 1
    title: Setup
    tasks: [Repo, CI, Docs]
    progress: 100
technologies:
  items:
    - name: Go
      category: Backend
`)

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	assert.Equal(t, "web02", schema.ShortID)
	assert.Equal(t, "Stage", schema.Subtitle)
	assert.Equal(t, "Deliver", schema.Objectives.General)
	require.Len(t, schema.Timeline, 1)
	assert.Len(t, schema.Timeline[0].Tasks, 3)
	assert.Equal(t, "Go", schema.Technologies.Items[0].Name)
}

func TestLoadImportSchema_RejectsUnknownFields(t *testing.T) {
	jsonPath := writeFile(t, "plan.json", `{"short_id": "WEB01", "title": "T", "tiemline": []}`)
	_, err := LoadImportSchema(jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")

	yamlPath := writeFile(t, "plan.yaml", "short_id: WEB01\ntitle: T\ntiemline: []\n")
	_, err = LoadImportSchema(yamlPath)
	require.Error(t, err)
}

func TestParseImportSchema_RejectsTrailingJSON(t *testing.T) {
	for name, data := range map[string]string{
		"garbage":       `{"short_id": "WEB01", "title": "T"} garbage`,
		"second object": `{"short_id": "WEB01", "title": "T"}{"title": "U"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseImportSchema([]byte(data), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unexpected data after the plan document")
		})
	}

	schema, err := ParseImportSchema([]byte("{\"short_id\": \"WEB01\", \"title\": \"T\"}\n\n"), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "T", schema.Title)
}

func TestLoadImportSchema_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "plan.toml", "title = 'x'")
	_, err := LoadImportSchema(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported plan file extension")
}

func TestLoadImportSchema_MissingFile(t *testing.T) {
	_, err := LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			original := FromPlan(catalog.ShortID, catalog.Default())

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, original, format))

			parsed, err := ParseImportSchema(buf.Bytes(), format)
			require.NoError(t, err)
			assert.Empty(t, ValidateImportSchema(parsed))
			assert.Equal(t, catalog.ShortID, parsed.ShortID)
			assert.Equal(t, *catalog.Default(), *Convert(parsed))
		})
	}
}

func TestEncode_JSONHasShortIDAtTopLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, validMinimalSchema(), FormatJSON))

	out := buf.String()
	assert.Contains(t, out, `"short_id": "WEB01"`)
	assert.Contains(t, out, `"title": "Web Platform"`)
	assert.NotContains(t, out, `"Plan"`)
}
