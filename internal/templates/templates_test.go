package templates

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testInfo = LeadInfo{
	FirstName: "Maria",
	Company:   "Lakeside Dental",
	Industry:  "Dental & Medical",
	City:      "Austin",
	SiteScore: 23,
	Issues:    []string{"Extremely slow — 23/100"},
}

func TestSMSTemplates_CarryOptOut(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(1)), "https://outreach.example.com")

	for name, body := range map[string]string{
		"hook":         engine.SMSHook(testInfo),
		"problem":      engine.SMSProblem(testInfo),
		"social proof": engine.SMSSocialProof(testInfo),
		"breakup":      engine.SMSBreakup(testInfo),
	} {
		assert.True(t, strings.HasSuffix(body, optOutSuffix), "%s message missing opt-out suffix", name)
	}
}

// Rendering the same step across many seeds must produce several distinct
// bodies; identical copies at scale get flagged as spam.
func TestTemplates_VaryAcrossSeeds(t *testing.T) {
	smsBodies := map[string]struct{}{}
	subjects := map[string]struct{}{}

	for seed := int64(0); seed < 20; seed++ {
		engine := NewEngine(rand.New(rand.NewSource(seed)), "https://outreach.example.com")
		smsBodies[engine.SMSHook(testInfo)] = struct{}{}
		subjects[engine.EmailProblem(testInfo).Subject] = struct{}{}
	}

	assert.GreaterOrEqual(t, len(smsBodies), 2, "sms hook bodies never vary")
	assert.GreaterOrEqual(t, len(subjects), 2, "email subjects never vary")
}

func TestSMSHook_IncludesScoreAndCompany(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(7)), "https://outreach.example.com")
	body := engine.SMSHook(testInfo)

	assert.Contains(t, body, "Lakeside Dental")
	assert.Contains(t, body, "23/100")
}

func TestEmails_CarryTrackingPlaceholders(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(3)), "https://outreach.example.com")

	for name, email := range map[string]Email{
		"problem":      engine.EmailProblem(testInfo),
		"top sites":    engine.EmailTopSites(testInfo),
		"social proof": engine.EmailSocialProof(testInfo),
		"breakup":      engine.EmailBreakup(testInfo),
	} {
		assert.Contains(t, email.HTML, "/t/o/"+MessageIDPlaceholder+".png", "%s email missing open pixel", name)
		assert.Contains(t, email.HTML, "/t/c/"+MessageIDPlaceholder, "%s email missing click redirect", name)
		assert.NotEmpty(t, email.Subject)
		assert.NotEmpty(t, email.Text)
		// The post-insert id fixup only rewrites HTML, so subjects and
		// plain text must never carry the placeholder.
		assert.NotContains(t, email.Subject, MessageIDPlaceholder, "%s subject leaked tracking markup", name)
		assert.NotContains(t, email.Text, MessageIDPlaceholder, "%s text body leaked tracking markup", name)
	}
}

func TestEmailBreakup_OnlyBreakupCarriesUnsubscribe(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(5)), "https://outreach.example.com")

	assert.Contains(t, engine.EmailBreakup(testInfo).HTML, "/u/"+MessageIDPlaceholder)
	assert.NotContains(t, engine.EmailProblem(testInfo).HTML, "/u/"+MessageIDPlaceholder)
	assert.NotContains(t, engine.EmailTopSites(testInfo).HTML, "/u/"+MessageIDPlaceholder)
	assert.NotContains(t, engine.EmailSocialProof(testInfo).HTML, "/u/"+MessageIDPlaceholder)
}

func TestGreeting_FallsBackWithoutName(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(2)), "https://outreach.example.com")

	anonymous := testInfo
	anonymous.FirstName = ""

	body := engine.SMSHook(anonymous)
	assert.NotContains(t, body, "Maria")
}
