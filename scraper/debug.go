package scraper

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	debugSourcePath     = "page_source.html"
	debugScreenshotPath = "page_screenshot.png"
)

// InspectPage dumps the current document and a full-page screenshot, prints
// a census of the markup, then blocks until the operator presses ENTER.
// Interactive diagnosis only; never runs outside debug mode.
func InspectPage(driver *BrowserDriver, in *os.File) {
	log.Println("DEBUG MODE - analyzing page structure")

	content, err := driver.Content()
	if err != nil {
		log.Printf("debug: could not read page content: %v", err)
		return
	}
	if err := os.WriteFile(debugSourcePath, []byte(content), 0644); err != nil {
		log.Printf("debug: write %s: %v", debugSourcePath, err)
	} else {
		log.Printf("page source saved to %s", debugSourcePath)
	}

	if err := driver.Screenshot(debugScreenshotPath); err != nil {
		log.Printf("debug: screenshot: %v", err)
	} else {
		log.Printf("screenshot saved to %s", debugScreenshotPath)
	}

	printCensus(content)

	fmt.Println("Check the saved files and press ENTER to continue...")
	bufio.NewReader(in).ReadString('\n')
}

// printCensus summarizes the dumped markup: common tag counts, which
// data-testid values exist, and how many elements carry listing-ish class
// keywords. This is what tells you which candidate selector to fix when the
// site changed its markup.
func printCensus(content string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		log.Printf("debug: parse page source: %v", err)
		return
	}

	log.Println("common elements:")
	for _, tag := range []string{"div", "article", "section", "li"} {
		log.Printf("  %s: %d found", tag, doc.Find(tag).Length())
	}

	testids := make(map[string]struct{})
	doc.Find("[data-testid]").Each(func(_ int, s *goquery.Selection) {
		if tid, ok := s.Attr("data-testid"); ok && tid != "" {
			testids[tid] = struct{}{}
		}
	})
	if len(testids) > 0 {
		log.Printf("%d distinct data-testid values:", len(testids))
		var sorted []string
		for tid := range testids {
			sorted = append(sorted, tid)
		}
		sort.Strings(sorted)
		if len(sorted) > 10 {
			sorted = sorted[:10]
		}
		for _, tid := range sorted {
			log.Printf("  - %s", tid)
		}
	}

	log.Println("class names with keywords:")
	for _, keyword := range []string{"card", "listing", "property", "item", "price", "location"} {
		if n := doc.Find(fmt.Sprintf("[class*='%s']", keyword)).Length(); n > 0 {
			log.Printf("  %s: %d elements", keyword, n)
		}
	}
}
