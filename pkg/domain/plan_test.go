package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingPlan_Immutable(t *testing.T) {
	pages := []PageBlueprint{{Kind: PageWelcome, Title: "Welcome"}}
	plan := NewOnboardingPlan(OnboardingFacts{}, pages)

	// Mutating the input or a returned copy must not leak into the plan.
	pages[0].Title = "changed"
	got := plan.Pages()
	got[0].Title = "changed again"

	assert.Equal(t, "Welcome", plan.Pages()[0].Title)
}

func TestOnboardingPlan_NilSafe(t *testing.T) {
	var plan *OnboardingPlan
	assert.Equal(t, 0, plan.Len())
	assert.Nil(t, plan.Pages())
	assert.Nil(t, plan.Kinds())
	assert.False(t, plan.Includes(PageWelcome))
}

func TestOnboardingPlan_MarshalJSON(t *testing.T) {
	facts := OnboardingFacts{DeviceSupportsDefaultHandlerConfiguration: true}
	plan := NewOnboardingPlan(facts, []PageBlueprint{
		{Kind: PageWelcome, Title: "Welcome"},
		{Kind: PageDefaultBrowserPromotion, Title: "Default"},
	})

	data, err := json.Marshal(plan)
	require.NoError(t, err)

	var decoded struct {
		PageCount int `json:"page_count"`
		Pages     []struct {
			Kind string `json:"kind"`
		} `json:"pages"`
		Facts OnboardingFacts `json:"facts"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.PageCount)
	assert.Equal(t, "welcome", decoded.Pages[0].Kind)
	assert.Equal(t, "default_browser_promotion", decoded.Pages[1].Kind)
	assert.Equal(t, facts, decoded.Facts)
}
