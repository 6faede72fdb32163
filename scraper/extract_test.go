package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const listingsFixture = `
<html><body>
<article>
  <div class="Job_job-card__abc12">
    <p>Pricing Actuary</p>
    <p>Acme Re</p>
    <div class="Job_job-card__locations__xyz">
      <a href="/l/london">London</a>
      <a href="/l/remote">Remote</a>
    </div>
    <div class="Job_job-card__tags__xyz">
      <a href="/t/pricing">Pricing</a>
      <a href="/t/health">Health</a>
    </div>
    <p>12 Aug 2026</p>
  </div>
  <div class="Job_job-card__abc12">
    <p>Reserving Analyst</p>
    <p>Beta Insurance</p>
    <p>Posted today</p>
  </div>
  <div class="Job_job-card__abc12">
    <p></p>
    <p>Orphan Corp</p>
  </div>
  <div class="unrelated-card">
    <p>Not a job</p>
  </div>
</article>
</body></html>`

func parseFixture(t *testing.T) []Candidate {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingsFixture))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return ExtractCandidates(doc)
}

func TestExtractCandidates(t *testing.T) {
	candidates := parseFixture(t)

	if len(candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(candidates))
	}

	first := candidates[0]
	if got := first.Title.OrElse(""); got != "Pricing Actuary" {
		t.Errorf("title = %q", got)
	}
	if got := first.Company.OrElse(""); got != "Acme Re" {
		t.Errorf("company = %q", got)
	}
	if len(first.Locations) != 2 || first.Locations[0] != "London" || first.Locations[1] != "Remote" {
		t.Errorf("locations = %v", first.Locations)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "Pricing" || first.Tags[1] != "Health" {
		t.Errorf("tags = %v", first.Tags)
	}
	if got := first.PostingDate.OrElse(""); got != "2026-08-12T00:00:00" {
		t.Errorf("posting date = %q, want normalized ISO form", got)
	}
}

func TestExtractCandidatesDatePassthrough(t *testing.T) {
	candidates := parseFixture(t)

	second := candidates[1]
	if got := second.PostingDate.OrElse(""); got != "Posted today" {
		t.Errorf("posting date = %q, want raw text passed through", got)
	}
	if len(second.Locations) != 0 {
		t.Errorf("locations = %v, want none", second.Locations)
	}
}

func TestCandidatePostable(t *testing.T) {
	candidates := parseFixture(t)

	if !candidates[0].Postable() {
		t.Error("complete card should be postable")
	}
	if !candidates[1].Postable() {
		t.Error("card without locations should still be postable")
	}
	if candidates[2].Postable() {
		t.Error("card with empty title should not be postable")
	}
}

func TestCandidatePayload(t *testing.T) {
	candidates := parseFixture(t)

	payload := candidates[0].Payload()
	if payload.Title != "Pricing Actuary" || payload.Company != "Acme Re" {
		t.Errorf("payload identity = %q / %q", payload.Title, payload.Company)
	}
	if payload.JobType != "full-time" {
		t.Errorf("job_type = %q, want full-time", payload.JobType)
	}
	if payload.PostingDate != "2026-08-12T00:00:00" {
		t.Errorf("posting_date = %q", payload.PostingDate)
	}
}
