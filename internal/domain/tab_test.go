package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"overview", TabOverview, false},
		{"Timeline", TabTimeline, false},
		{"  technologies ", TabTechnologies, false},
		{"calendar", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTab(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown tab")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAllTabs_OrderAndLabels(t *testing.T) {
	require.Len(t, AllTabs, 6)
	for i, tab := range AllTabs {
		assert.Equal(t, i, tab.Index())
		assert.NotEqual(t, string(tab), tab.Label(), "tab %s should have a label", tab)
	}
	assert.Equal(t, "Planning", TabTimeline.Label())
	assert.Equal(t, -1, Tab("nope").Index())
	assert.Equal(t, "nope", Tab("nope").Label())
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-5))
	assert.Equal(t, 0, ClampProgress(0))
	assert.Equal(t, 55, ClampProgress(55))
	assert.Equal(t, 100, ClampProgress(100))
	assert.Equal(t, 100, ClampProgress(140))
	assert.Equal(t, 85, TimelineWeek{Progress: 85}.ClampedProgress())
}

func TestValidateShortID(t *testing.T) {
	assert.NoError(t, ValidateShortID("APP01"))
	assert.NoError(t, ValidateShortID("FLUTR2025"))
	assert.Error(t, ValidateShortID(""))
	assert.Error(t, ValidateShortID("app01"))
	assert.Error(t, ValidateShortID("AP1"))
}

func TestStoredPlanDisplayID(t *testing.T) {
	assert.Equal(t, "APP01", (&StoredPlan{ID: "0123456789", ShortID: "APP01"}).DisplayID())
	assert.Equal(t, "01234567", (&StoredPlan{ID: "0123456789"}).DisplayID())
	assert.Equal(t, "abc", (&StoredPlan{ID: "abc"}).DisplayID())
}
