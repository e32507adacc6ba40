// Package templates renders outreach message content from lead attributes.
//
// Every function varies its phrasing between 2-3 pre-written variants per
// slot using the injected random source. Byte-identical bodies repeated at
// scale trip carrier and mailbox spam filtering, so variation is a
// requirement here, not a flourish.
package templates

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
)

// MessageIDPlaceholder stands in for the message row id inside rendered
// email HTML. The id only exists after insert, so the sequence assigner
// substitutes the real id in a second pass.
const MessageIDPlaceholder = "temp_mid"

const optOutSuffix = "Reply STOP to opt out"

// LeadInfo is the projection of a lead that templates render from.
type LeadInfo struct {
	FirstName string
	Company   string
	Industry  string
	City      string
	SiteScore int
	Issues    []string
}

// Email is a fully rendered email message.
type Email struct {
	Subject string
	HTML    string
	Text    string
}

// Engine renders message bodies. The random source is injected so tests can
// drive variant selection deterministically.
type Engine struct {
	rnd  *rand.Rand
	base string
}

// NewEngine creates a template engine. base is the public tracking base URL
// (open pixel, click redirects, unsubscribe).
func NewEngine(rnd *rand.Rand, trackBaseURL string) *Engine {
	return &Engine{
		rnd:  rnd,
		base: strings.TrimRight(trackBaseURL, "/"),
	}
}

func (e *Engine) pick(options ...string) string {
	return options[e.rnd.Intn(len(options))]
}

func (e *Engine) greeting(info LeadInfo) string {
	if info.FirstName != "" {
		return e.pick(
			fmt.Sprintf("Hi %s,", info.FirstName),
			fmt.Sprintf("Hey %s —", info.FirstName),
		)
	}
	return e.pick("Hi there,", "Hey,", "Hello,")
}

// SMSHook is step 1: the lead's own measured score plus the offer.
func (e *Engine) SMSHook(info LeadInfo) string {
	opener := e.pick(
		fmt.Sprintf("%s I ran %s's website through Google's speed test and it scored %d/100 on mobile.", e.greeting(info), info.Company, info.SiteScore),
		fmt.Sprintf("%s quick heads up — %s's site scored %d/100 on Google's mobile speed test.", e.greeting(info), info.Company, info.SiteScore),
		fmt.Sprintf("%s just tested %s's website: %d/100 on mobile page speed.", e.greeting(info), info.Company, info.SiteScore),
	)
	offer := e.pick(
		"We rebuild sites like yours for free — answer 3 quick questions and we'll show you a preview.",
		"I'd like to rebuild it for free. All it takes is answering 3 short questions.",
		"We'll redo it at no cost if you answer 3 quick questions about the business.",
	)
	return fmt.Sprintf("%s %s %s", opener, offer, optOutSuffix)
}

// SMSProblem is step 2: the bounce-rate stat tied to the lead's slow site.
func (e *Engine) SMSProblem(info LeadInfo) string {
	stat := e.pick(
		"53% of mobile visitors leave a page that takes over 3 seconds to load.",
		"Over half of mobile visitors give up on a site that loads slower than 3 seconds.",
	)
	tie := e.pick(
		fmt.Sprintf("%s's site is in that slow range right now, which usually means lost calls.", info.Company),
		fmt.Sprintf("Right now %s's site sits in that range — customers are bouncing before they see you.", info.Company),
	)
	offer := e.pick(
		"The free rebuild offer still stands: 3 questions and we get started.",
		"Happy to fix that for free — just 3 quick questions to get going.",
	)
	return fmt.Sprintf("%s %s %s %s", stat, tie, offer, optOutSuffix)
}

// SMSSocialProof is step 3: what high performers in the lead's industry do.
func (e *Engine) SMSSocialProof(info LeadInfo) string {
	proof := e.pick(
		fmt.Sprintf("The top %s businesses we track load in under 2 seconds and book jobs straight from the site.", strings.ToLower(info.Industry)),
		fmt.Sprintf("Best-performing %s sites load fast, show reviews up front, and take bookings online.", strings.ToLower(info.Industry)),
		fmt.Sprintf("High-ranking %s companies all have one thing in common: a fast site that converts visits into calls.", strings.ToLower(info.Industry)),
	)
	offer := e.pick(
		fmt.Sprintf("We can get %s there free — 3 questions is all it takes.", info.Company),
		"Still happy to build that for you at no cost. 3 quick questions and it's underway.",
	)
	return fmt.Sprintf("%s %s %s", proof, offer, optOutSuffix)
}

// SMSBreakup is step 4: the last message, pressure off, offer open.
func (e *Engine) SMSBreakup(info LeadInfo) string {
	closer := e.pick(
		"Last message from me, promise.",
		"This is my last text — I won't keep pinging you.",
	)
	open := e.pick(
		fmt.Sprintf("If a free rebuild for %s ever makes sense, the offer stays open. No pressure at all.", info.Company),
		"The free rebuild offer doesn't expire — reach out whenever the timing works. All the best.",
	)
	return fmt.Sprintf("%s %s %s", closer, open, optOutSuffix)
}

// EmailProblem is the first email (step 2 of the combined sequence): the
// bounce-rate stat plus the lead's own score.
func (e *Engine) EmailProblem(info LeadInfo) Email {
	subject := e.pick(
		fmt.Sprintf("%s's website scored %d/100", info.Company, info.SiteScore),
		fmt.Sprintf("Quick note about %s's site speed", info.Company),
	)
	body := []string{
		e.greeting(info),
		e.pick(
			fmt.Sprintf("I ran %s's website through Google's mobile speed test and it came back at %d/100.", info.Company, info.SiteScore),
			fmt.Sprintf("%s's site scored %d/100 on Google's mobile speed test when I checked this week.", info.Company, info.SiteScore),
		),
		e.pick(
			"Google's own research puts it plainly: 53% of mobile visitors abandon a page that takes more than 3 seconds to load.",
			"More than half of mobile visitors leave a page that takes over 3 seconds — that traffic never calls.",
		),
		e.pick(
			"We rebuild sites like yours for free. Answer 3 quick questions and we'll send over a preview.",
			"We'd like to rebuild it at no cost — it starts with 3 short questions about the business.",
		),
	}
	return e.compose(subject, body, false)
}

// EmailTopSites is step 4: social proof framed as what the top sites do.
func (e *Engine) EmailTopSites(info LeadInfo) Email {
	subject := e.pick(
		fmt.Sprintf("What the best %s sites do differently", strings.ToLower(info.Industry)),
		fmt.Sprintf("How top %s businesses win online", strings.ToLower(info.Industry)),
	)
	body := []string{
		e.greeting(info),
		e.pick(
			fmt.Sprintf("We looked at the highest-converting %s websites and the pattern is consistent: they load in under 2 seconds, lead with reviews, and make booking one tap.", strings.ToLower(info.Industry)),
			fmt.Sprintf("The %s businesses that dominate local search share three things: fast load times, visible reviews, and an obvious way to book.", strings.ToLower(info.Industry)),
		),
		e.pick(
			fmt.Sprintf("%s's current site makes none of that easy for a visitor on a phone.", info.Company),
			fmt.Sprintf("Right now %s's site gets in its own way on mobile.", info.Company),
		),
		e.pick(
			"The free rebuild offer is still open — 3 quick questions and we start.",
			"We'll close that gap for free. 3 short questions is all it takes to kick off.",
		),
	}
	return e.compose(subject, body, false)
}

// EmailSocialProof is step 6: the step-3 style proof in email form.
func (e *Engine) EmailSocialProof(info LeadInfo) Email {
	subject := e.pick(
		fmt.Sprintf("Your %s competitors' sites, compared", strings.ToLower(info.Industry)),
		fmt.Sprintf("%s vs. the fastest sites in %s", info.Company, strings.ToLower(info.Industry)),
	)
	body := []string{
		e.greeting(info),
		e.pick(
			fmt.Sprintf("Every week we benchmark %s websites. The ones winning new customers load fast and turn visits into calls.", strings.ToLower(info.Industry)),
			fmt.Sprintf("We keep tabs on %s sites across the country — the winners are fast, clear, and bookable.", strings.ToLower(info.Industry)),
		),
		e.pick(
			fmt.Sprintf("There's no reason %s can't be in that group.", info.Company),
			fmt.Sprintf("%s belongs in that group, and getting there is cheaper than you think: free.", info.Company),
		),
		e.pick(
			"Answer 3 quick questions and we'll rebuild the site at no cost.",
			"The no-cost rebuild starts with 3 short questions — reply and I'll send them over.",
		),
	}
	return e.compose(subject, body, false)
}

// EmailBreakup is step 8: the final email, with the unsubscribe link.
func (e *Engine) EmailBreakup(info LeadInfo) Email {
	subject := e.pick(
		"Closing the loop",
		fmt.Sprintf("Last note about %s's website", info.Company),
	)
	body := []string{
		e.greeting(info),
		e.pick(
			"This is the last email from me — I know a website rebuild isn't always the priority of the week.",
			"I'll stop here. Inboxes are busy and a website project isn't always top of the list.",
		),
		e.pick(
			fmt.Sprintf("If a free rebuild for %s ever makes sense, the offer stays open. Just reply to this email whenever.", info.Company),
			"The free rebuild offer doesn't expire. Whenever the timing is right, reply and we'll pick it up.",
		),
	}
	return e.compose(subject, body, true)
}

// compose assembles the HTML and plain-text renditions. Every email carries
// the open pixel; clicks route through the tracked redirect; the breakup
// email adds the unsubscribe footer.
func (e *Engine) compose(subject string, paragraphs []string, unsubscribe bool) Email {
	target := url.QueryEscape(e.base + "/free-rebuild")
	cta := e.pick("See what your new site could look like", "Preview your free rebuild")
	clickURL := fmt.Sprintf("%s/t/c/%s?u=%s", e.base, MessageIDPlaceholder, target)

	var html strings.Builder
	html.WriteString("<html><body>")
	for _, p := range paragraphs {
		html.WriteString("<p>" + p + "</p>")
	}
	html.WriteString(fmt.Sprintf(`<p><a href="%s">%s</a></p>`, clickURL, cta))
	if unsubscribe {
		html.WriteString(fmt.Sprintf(`<p style="font-size:12px;color:#888"><a href="%s/u/%s">Unsubscribe</a></p>`, e.base, MessageIDPlaceholder))
	}
	html.WriteString(fmt.Sprintf(`<img src="%s/t/o/%s.png" width="1" height="1" alt="">`, e.base, MessageIDPlaceholder))
	html.WriteString("</body></html>")

	return Email{
		Subject: subject,
		HTML:    html.String(),
		Text:    strings.Join(paragraphs, "\n\n"),
	}
}
