package scraper

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"
	navigationTimeout = 30 * time.Second
	lookupTimeout     = 5 * time.Second
)

// BrowserDriver owns the Chromium session for the whole run. It implements
// Finder at page scope, so the locator works the same on the page as on a
// card element.
type BrowserDriver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// NewBrowserDriver launches Chromium with the stealth flags and a fixed
// desktop fingerprint.
func NewBrowserDriver(headless bool) (*BrowserDriver, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
			"--blink-settings=imagesEnabled=false",
			"--window-size=1920,1080",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport:  &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("create context: %w", err)
	}

	// Chromium still exposes navigator.webdriver under these flags.
	err = context.AddInitScript(playwright.Script{
		Content: playwright.String("Object.defineProperty(navigator, 'webdriver', {get: () => undefined})"),
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("add init script: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &BrowserDriver{pw: pw, browser: browser, page: page}, nil
}

func (d *BrowserDriver) Close() {
	if d.page != nil {
		d.page.Close()
	}
	if d.browser != nil {
		d.browser.Close()
	}
	if d.pw != nil {
		d.pw.Stop()
	}
}

func (d *BrowserDriver) Navigate(url string) error {
	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(navigationTimeout.Milliseconds())),
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

func (d *BrowserDriver) CurrentURL() string {
	return d.page.URL()
}

func (d *BrowserDriver) Title() string {
	title, _ := d.page.Title()
	return title
}

// WaitReady blocks until the document body is attached, or the timeout runs
// out. A timeout is not an error; discovery on a half-loaded page just
// yields fewer cards.
func (d *BrowserDriver) WaitReady(timeout time.Duration) {
	d.page.Locator("body").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
}

// ScrollHalfDown scrolls to the middle of the document, which is what makes
// lazy-rendered cards below the fold materialize.
func (d *BrowserDriver) ScrollHalfDown() {
	d.page.Evaluate(`window.scrollTo(0, document.body.scrollHeight/2)`)
}

func (d *BrowserDriver) Content() (string, error) {
	return d.page.Content()
}

func (d *BrowserDriver) Screenshot(path string) error {
	_, err := d.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

// Find implements Finder at page scope.
func (d *BrowserDriver) Find(selector string) ([]Element, error) {
	return allElements(d.page.Locator(selector))
}

func allElements(loc playwright.Locator) ([]Element, error) {
	matches, err := loc.All()
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(matches))
	for _, m := range matches {
		elements = append(elements, &pwElement{loc: m})
	}
	return elements, nil
}

// pwElement adapts a pinned playwright locator to the Element interface.
type pwElement struct {
	loc playwright.Locator
}

func (e *pwElement) Find(selector string) ([]Element, error) {
	return allElements(e.loc.Locator(selector))
}

func (e *pwElement) Text() (string, error) {
	return e.loc.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(float64(lookupTimeout.Milliseconds())),
	})
}

func (e *pwElement) Attr(name string) (string, error) {
	return e.loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(float64(lookupTimeout.Milliseconds())),
	})
}

// humanDelay sleeps a uniformly random duration in [min, max).
func humanDelay(min, max time.Duration) {
	time.Sleep(min + time.Duration(rand.Int63n(int64(max-min))))
}
