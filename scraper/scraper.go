package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/jobportal/job-portal-service/common/config"
	"github.com/jobportal/job-portal-service/common/redis"
	"github.com/jobportal/job-portal-service/common/storage"
	"github.com/jobportal/job-portal-service/jobs"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"
)

// RunSummary tallies the outcome of one scraping run.
type RunSummary struct {
	CardsFound int
	Posted     int
	Skipped    int
	Dropped    int
}

// Scraper drives a headless browser over the listings page, extracts the
// job cards and submits them to the jobs API.
type Scraper struct {
	cfg     config.ScraperConfig
	browser *rod.Browser
	client  *Client

	// Optional collaborators; each may be nil when its backend is not
	// configured.
	runLog   *jobs.Store
	cache    *redis.RedisClient
	archive  storage.StorageService
	bucket   string
	notifyFn func(summary RunSummary, runID string)
}

func New(cfg config.ScraperConfig) *Scraper {
	return &Scraper{
		cfg:     cfg,
		client:  NewClient(cfg.APIURL, cfg.RetryAttempts, cfg.RetryDelay),
		archive: storage.NewNoopStorage(),
	}
}

// SetRunLog enables scrape run bookkeeping in the database.
func (s *Scraper) SetRunLog(store *jobs.Store) {
	s.runLog = store
}

// SetCache enables the seen-posting cache so reruns skip known cards
// without a round trip to the API.
func (s *Scraper) SetCache(cache *redis.RedisClient) {
	s.cache = cache
}

// SetArchive enables raw page snapshot archiving.
func (s *Scraper) SetArchive(archive storage.StorageService, bucket string) {
	s.archive = archive
	s.bucket = bucket
}

// SetNotify registers a callback invoked with the final summary.
func (s *Scraper) SetNotify(fn func(summary RunSummary, runID string)) {
	s.notifyFn = fn
}

// Setup initializes the browser
func (s *Scraper) Setup(ctx context.Context) error {
	log.Info().Msg("Setting up browser")

	url, err := launcher.New().
		Headless(s.cfg.Headless).
		Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}
	s.browser = browser

	log.Info().Msg("Browser setup complete")
	return nil
}

// Teardown cleans up resources
func (s *Scraper) Teardown(ctx context.Context) error {
	if s.browser != nil {
		return s.browser.Close()
	}
	return nil
}

// Run executes one full scraping pass and returns its summary.
func (s *Scraper) Run(ctx context.Context) (RunSummary, error) {
	var summary RunSummary

	runID := s.startRun(ctx)
	startedAt := time.Now().UTC()

	html, err := s.loadListings(ctx)
	if err != nil {
		return summary, err
	}

	s.archiveSnapshot(ctx, html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return summary, fmt.Errorf("parsing listings page: %w", err)
	}

	candidates := ExtractCandidates(doc)
	summary.CardsFound = len(candidates)
	log.Info().Int("cards", summary.CardsFound).Msg("Job cards found")

	if s.cfg.MaxJobs > 0 && len(candidates) > s.cfg.MaxJobs {
		candidates = candidates[:s.cfg.MaxJobs]
	}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if !candidate.Postable() {
			log.Warn().Msg("Missing title or company, skipping card")
			summary.Skipped++
			continue
		}

		payload := candidate.Payload()

		if s.seen(ctx, payload) {
			log.Debug().Str("title", payload.Title).Msg("Posting already submitted, skipping")
			summary.Skipped++
			continue
		}

		if err := s.client.PostJob(ctx, payload); err != nil {
			log.Error().Err(err).Str("title", payload.Title).Msg("Dropping posting")
			summary.Dropped++
			continue
		}

		summary.Posted++
		s.markSeen(ctx, payload)
	}

	s.finishRun(ctx, runID, startedAt, summary)
	if s.notifyFn != nil {
		s.notifyFn(summary, runID)
	}

	log.Info().
		Int("found", summary.CardsFound).
		Int("posted", summary.Posted).
		Int("skipped", summary.Skipped).
		Int("dropped", summary.Dropped).
		Msg("Scrape run complete")

	return summary, nil
}

// loadListings navigates to the target page, scrolls until no further
// content loads and returns the rendered HTML.
func (s *Scraper) loadListings(ctx context.Context) (string, error) {
	if s.browser == nil {
		if err := s.Setup(ctx); err != nil {
			return "", err
		}
	}

	log.Info().Str("url", s.cfg.TargetURL).Msg("Navigating to listings page")

	page, err := s.browser.Page(proto.TargetCreateTarget{URL: s.cfg.TargetURL})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	page = page.Context(ctx)

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to wait for page load: %w", err)
	}

	// Additional wait to ensure dynamic content is loaded
	if s.cfg.WaitAfterLoad > 0 {
		time.Sleep(s.cfg.WaitAfterLoad)
	}

	scroll := func() error {
		_, err := page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
		return err
	}
	measure := func() (int, error) {
		res, err := page.Eval(`() => document.body.scrollHeight`)
		if err != nil {
			return 0, err
		}
		return res.Value.Int(), nil
	}

	rounds, err := scrollUntilStable(ctx, scroll, measure, s.cfg.ScrollDelay, s.cfg.MaxScrolls)
	if err != nil {
		return "", fmt.Errorf("failed to scroll listings: %w", err)
	}
	log.Debug().Int("rounds", rounds).Msg("Page height stable")

	return page.HTML()
}

// fingerprint mirrors the API's uniqueness rule so the cache and the
// database agree on what a duplicate is.
func fingerprint(payload jobPayload) string {
	location := ""
	if len(payload.Locations) > 0 {
		location = payload.Locations[0]
	}
	sum := sha256.Sum256([]byte(payload.Title + "|" + payload.Company + "|" + location))
	return "jobs:seen:" + hex.EncodeToString(sum[:])
}

func (s *Scraper) seen(ctx context.Context, payload jobPayload) bool {
	if s.cache == nil {
		return false
	}
	exists, err := s.cache.Exists(ctx, fingerprint(payload))
	if err != nil {
		log.Warn().Err(err).Msg("Seen-cache lookup failed")
		return false
	}
	return exists
}

func (s *Scraper) markSeen(ctx context.Context, payload jobPayload) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, fingerprint(payload), "1", 24*time.Hour); err != nil {
		log.Warn().Err(err).Msg("Seen-cache write failed")
	}
}

func (s *Scraper) archiveSnapshot(ctx context.Context, html string) {
	name := fmt.Sprintf("snapshots/%s.html", time.Now().UTC().Format("20060102T150405"))
	url, err := s.archive.Upload(ctx, s.bucket, name, []byte(html), "text/html")
	if err != nil {
		log.Warn().Err(err).Msg("Snapshot archive failed")
		return
	}
	if url != "" {
		log.Info().Str("url", url).Msg("Snapshot archived")
	}
}

func (s *Scraper) startRun(ctx context.Context) string {
	if s.runLog == nil {
		return ""
	}
	id, err := s.runLog.StartScrapeRun(ctx, s.cfg.TargetURL)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to record scrape run start")
		return ""
	}
	return id
}

func (s *Scraper) finishRun(ctx context.Context, runID string, startedAt time.Time, summary RunSummary) {
	if s.runLog == nil || runID == "" {
		return
	}
	err := s.runLog.FinishScrapeRun(ctx, jobs.ScrapeRun{
		ID:         runID,
		Source:     s.cfg.TargetURL,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		CardsFound: summary.CardsFound,
		Posted:     summary.Posted,
		Skipped:    summary.Skipped,
		Dropped:    summary.Dropped,
	})
	if err != nil {
		log.Warn().Err(err).Str("runID", runID).Msg("Failed to record scrape run finish")
	}
}
