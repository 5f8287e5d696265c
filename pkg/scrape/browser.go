package scrape

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// BrowserDescriber renders the page in headless Chrome before reading the
// description block, for pages that build it with JavaScript. The browser is
// started on first use and shared across calls.
type BrowserDescriber struct {
	bin     string
	timeout time.Duration

	mu      sync.Mutex
	browser *rod.Browser
}

// NewBrowserDescriber uses bin as the Chrome binary; empty lets rod find or download one.
func NewBrowserDescriber(bin string) *BrowserDescriber {
	return &BrowserDescriber{bin: bin, timeout: defaultTimeout}
}

func (d *BrowserDescriber) connect() (*rod.Browser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.browser != nil {
		return d.browser, nil
	}

	l := launcher.New().Headless(true)
	if d.bin != "" {
		l = l.Bin(d.bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	d.browser = browser
	return browser, nil
}

func (d *BrowserDescriber) Describe(ctx context.Context, pageURL string) (string, error) {
	browser, err := d.connect()
	if err != nil {
		return "", err
	}

	// The page handle stays untimed so Close still reaches Chrome after the
	// load deadline has passed.
	page, err := browser.Page(proto.TargetCreateTarget{URL: pageURL})
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	timed := page.Context(ctx).Timeout(d.timeout)
	defer timed.CancelTimeout()

	if err := timed.WaitLoad(); err != nil {
		return "", fmt.Errorf("load page: %w", err)
	}

	el, err := timed.Element(DescriptionSelector)
	if err != nil {
		return "", ErrNoDescription
	}

	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}

	text = collapseSpace(strings.TrimSpace(text))
	if text == "" {
		return "", ErrNoDescription
	}
	return text, nil
}

func (d *BrowserDescriber) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.browser == nil {
		return nil
	}
	err := d.browser.Close()
	d.browser = nil
	return err
}
