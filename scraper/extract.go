package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const (
	jobCardSelector  = "article div[class*='Job_job-card']"
	locationSelector = "div[class*='locations'] a"
	tagSelector      = "div[class*='tags'] a"
)

// cardDateLayout matches how the listing renders posting dates, e.g. "12 Aug 2026".
const cardDateLayout = "2 Jan 2006"

// Candidate is a job posting lifted off a single listing card. Fields that
// could not be found on the card are absent rather than empty strings.
type Candidate struct {
	Title       mo.Option[string]
	Company     mo.Option[string]
	Locations   []string
	Tags        []string
	PostingDate mo.Option[string]
}

// Postable reports whether the candidate carries enough data to submit.
// Cards without a title or company are advertisements or partially rendered
// placeholders and are skipped.
func (c Candidate) Postable() bool {
	return c.Title.IsPresent() && c.Company.IsPresent()
}

// jobPayload is the request body submitted to the jobs API.
type jobPayload struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Locations   []string `json:"locations"`
	PostingDate string   `json:"posting_date,omitempty"`
	Tags        []string `json:"tags"`
	JobType     string   `json:"job_type"`
}

// Payload converts a postable candidate into the API request body. Listings
// on the board are full-time roles unless tagged otherwise.
func (c Candidate) Payload() jobPayload {
	return jobPayload{
		Title:       c.Title.OrElse(""),
		Company:     c.Company.OrElse(""),
		Locations:   c.Locations,
		PostingDate: c.PostingDate.OrElse(""),
		Tags:        c.Tags,
		JobType:     "full-time",
	}
}

// ExtractCandidates parses the rendered listings page and returns one
// candidate per job card, in document order.
func ExtractCandidates(doc *goquery.Document) []Candidate {
	var out []Candidate
	doc.Find(jobCardSelector).Each(func(_ int, card *goquery.Selection) {
		// Inner sections such as the locations block reuse the card class
		// prefix; only the outermost match is a card.
		if card.ParentsFiltered(jobCardSelector).Length() > 0 {
			return
		}
		out = append(out, extractCard(card))
	})
	return out
}

func extractCard(card *goquery.Selection) Candidate {
	// Cards lay out their text as paragraphs: the first is the position,
	// the second the company, and the last the relative posting date.
	paragraphs := card.Find("p")

	c := Candidate{
		Title:   paragraphText(paragraphs.Eq(0)),
		Company: paragraphText(paragraphs.Eq(1)),
	}

	if paragraphs.Length() > 2 {
		c.PostingDate = paragraphText(paragraphs.Eq(paragraphs.Length() - 1)).
			Map(func(raw string) (string, bool) {
				return normalizePostingDate(raw), true
			})
	}

	c.Locations = selectionTexts(card.Find(locationSelector))
	c.Tags = selectionTexts(card.Find(tagSelector))

	return c
}

func paragraphText(sel *goquery.Selection) mo.Option[string] {
	if sel.Length() == 0 {
		return mo.None[string]()
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return mo.None[string]()
	}
	return mo.Some(text)
}

func selectionTexts(sel *goquery.Selection) []string {
	return lo.FilterMap(sel.Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	}), func(text string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(text)
		return trimmed, trimmed != ""
	})
}

// normalizePostingDate converts the card's display format into ISO 8601.
// Anything that does not parse, such as "Posted today", is passed through
// untouched for the API to interpret.
func normalizePostingDate(raw string) string {
	t, err := time.Parse(cardDateLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02T15:04:05")
}
