package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amenities-dashboard/hours"
	"amenities-dashboard/models"
)

func sampleStats() models.Stats {
	return models.Stats{
		ByType: []models.LabeledCount{{Label: "cafe", Count: 3}, {Label: "pub", Count: 1}},
		ByDayPart: []models.LabeledCount{
			{Label: "Morning", Count: 3}, {Label: "Midday", Count: 3},
			{Label: "Evening", Count: 2}, {Label: "Night", Count: 1},
		},
		TypesPerDayPart: map[hours.DayPart][]models.LabeledCount{
			hours.Dawn:  {{Label: "cafe", Count: 3}},
			hours.Day:   {{Label: "cafe", Count: 3}},
			hours.Dusk:  {{Label: "cafe", Count: 1}, {Label: "pub", Count: 1}},
			hours.Night: {{Label: "pub", Count: 1}},
		},
	}
}

func TestChartRenderer_Page(t *testing.T) {
	page := NewChartRenderer().Page(sampleStats())
	assert.Len(t, page.Charts, 6)
}

func TestChartRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewChartRenderer().Render(&buf, sampleStats()))

	html := buf.String()
	assert.Contains(t, html, TypeChartTitle)
	assert.Contains(t, html, DayPartChartTitle)
	assert.Contains(t, html, "Evening")
	assert.Contains(t, html, "Midday")
}

func TestChartRenderer_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewChartRenderer().Render(&buf, models.Stats{}))
	assert.Contains(t, buf.String(), TypeChartTitle)
}
