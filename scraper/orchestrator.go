package scraper

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"emlakjet_scraper/config"
	"emlakjet_scraper/identity"
	"emlakjet_scraper/models"
	"emlakjet_scraper/services"
	"emlakjet_scraper/storage"
)

const (
	readyTimeout = 10 * time.Second
	// A results page renders dozens of cards; fewer than this means parts of
	// the page have not materialized yet and a scroll retry is worth it.
	minCardsBeforeRetry = 3
)

// Orchestrator walks the paginated search results, accumulates records and
// writes the run's output. Pages fail independently: a broken page
// contributes zero records and the run moves on.
type Orchestrator struct {
	cfg       *config.Config
	extractor *Extractor

	store    *storage.RunStore
	pg       *storage.PostgresStore
	uploader *storage.ArchiveUploader

	records     []*models.Record
	errorsCount int
}

func NewOrchestrator(cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		extractor: NewExtractor(cfg.Selectors, log.Printf),
	}
}

// SetSinks wires the optional destinations; any of them may be nil.
func (o *Orchestrator) SetSinks(store *storage.RunStore, pg *storage.PostgresStore, uploader *storage.ArchiveUploader) {
	o.store = store
	o.pg = pg
	o.uploader = uploader
}

// Run performs one full collection. When ctx is cancelled mid-run the
// accumulated records are still flushed, to the partial output file.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.records = nil
	o.errorsCount = 0

	run := &models.CollectRun{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Status:    models.RunStatusRunning,
	}
	if o.store != nil {
		if err := o.store.CreateRun(run); err != nil {
			log.Printf("warning: could not record run start: %v", err)
		}
	}

	log.Printf("run %s: %d pages, headless=%v, debug=%v",
		run.ID, o.cfg.Pages, o.cfg.Headless, o.cfg.Debug)

	driver, err := NewBrowserDriver(o.cfg.Headless)
	if err != nil {
		o.finishRun(run, models.RunStatusFailed)
		return err
	}
	defer driver.Close()

	interrupted := false
	for page := 1; page <= o.cfg.Pages; page++ {
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		o.scrapePage(driver, page)
		run.PagesVisited++
		log.Printf("total so far: %d listings", len(o.records))

		if page < o.cfg.Pages {
			humanDelay(2*time.Second, 4*time.Second)
		}
	}
	if ctx.Err() != nil {
		interrupted = true
	}

	return o.finalize(run, interrupted)
}

// scrapePage handles one results page end to end. Every failure mode is
// local: it logs, counts the error and reports zero records.
func (o *Orchestrator) scrapePage(driver *BrowserDriver, pageNum int) int {
	url := fmt.Sprintf("%s%s%d", config.BaseURL, config.StartPath, pageNum)
	log.Printf("PAGE %d - %s", pageNum, url)

	if err := driver.Navigate(url); err != nil {
		log.Printf("page %d: %v", pageNum, err)
		o.errorsCount++
		return 0
	}
	humanDelay(4*time.Second, 5*time.Second)

	log.Printf("current URL: %s", driver.CurrentURL())
	log.Printf("page title: %s", driver.Title())

	if o.cfg.Debug && pageNum == 1 {
		InspectPage(driver, os.Stdin)
	}

	driver.WaitReady(readyTimeout)

	cards := o.discoverCards(driver)
	if len(cards) == 0 {
		log.Printf("page %d: no property cards found", pageNum)
		return 0
	}

	log.Printf("processing %d cards...", len(cards))
	count := o.collectCards(cards)
	log.Printf("page %d: extracted %d listings", pageNum, count)
	return count
}

// collectCards runs the extractor over every discovered card, appending the
// emitted records to the accumulator.
func (o *Orchestrator) collectCards(cards []Element) int {
	count := 0
	for i, card := range cards {
		if rec, ok := o.extractor.Extract(card, time.Now()); ok {
			o.records = append(o.records, rec)
			count++
		}
		if (i+1)%10 == 0 {
			log.Printf("processed %d/%d...", i+1, len(cards))
		}
	}
	return count
}

// discoverCards is the two-tier card search: direct lookup first, then one
// scroll-and-retry when the page looks under-rendered.
func (o *Orchestrator) discoverCards(driver *BrowserDriver) []Element {
	match := Locate(driver, o.cfg.Selectors.Cards, "property cards", log.Printf)
	if len(match.Elements) >= minCardsBeforeRetry {
		return match.Elements
	}

	log.Printf("only found %d cards, trying scroll...", len(match.Elements))
	driver.ScrollHalfDown()
	time.Sleep(2 * time.Second)

	retry := Locate(driver, o.cfg.Selectors.Cards, "property cards after scroll", log.Printf)
	if len(retry.Elements) > len(match.Elements) {
		return retry.Elements
	}
	return match.Elements
}

// finalize dedups the accumulator and writes every configured output. It
// deliberately ignores the run context: an interrupted run still flushes.
func (o *Orchestrator) finalize(run *models.CollectRun, interrupted bool) error {
	run.ListingsFound = len(o.records)
	run.ErrorsCount = o.errorsCount

	status := models.RunStatusCompleted
	if interrupted {
		status = models.RunStatusInterrupted
	}

	if len(o.records) == 0 {
		log.Println("no data collected")
		o.finishRun(run, status)
		return nil
	}

	final := Dedup(o.records)
	run.ListingsKept = len(final)
	log.Printf("deduplicated %d -> %d listings", len(o.records), len(final))

	path, err := storage.WriteCSV(o.cfg.OutputDir, final, interrupted)
	if err != nil {
		o.finishRun(run, models.RunStatusFailed)
		return fmt.Errorf("write output: %w", err)
	}
	run.OutputPath = path
	if interrupted {
		log.Printf("partial data saved to: %s", path)
	} else {
		log.Printf("saved to: %s", path)
	}

	services.BuildInsights(final).Log()

	ctx := context.Background()
	if o.pg != nil {
		if err := o.pg.UpsertRecords(ctx, final); err != nil {
			log.Printf("warning: postgres sink failed: %v", err)
		} else {
			log.Printf("stored %d listings in Postgres", len(final))
		}
	}

	if o.uploader != nil && !interrupted {
		if err := o.uploader.ArchiveFile(ctx, path); err != nil {
			log.Printf("warning: archive upload failed: %v", err)
		}
	}

	o.finishRun(run, status)
	return nil
}

func (o *Orchestrator) finishRun(run *models.CollectRun, status models.RunStatus) {
	now := time.Now()
	run.FinishedAt = &now
	run.Status = status
	if o.store != nil {
		if err := o.store.UpdateRun(run); err != nil {
			log.Printf("warning: could not record run end: %v", err)
		}
	}
}

// Dedup drops records whose dedup key was already seen, keeping the first
// occurrence and the original order.
func Dedup(records []*models.Record) []*models.Record {
	seen := make(map[string]struct{}, len(records))
	result := make([]*models.Record, 0, len(records))
	for _, r := range records {
		key := identity.Key(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, r)
	}
	return result
}
