package deeplink

import (
	"context"
	"log"

	"github.com/chromedp/chromedp"
)

// Opener owns the single browser tab used for LinkedIn deep links. The first
// Open starts a browser and remembers the tab; later Opens navigate the same
// tab instead of spawning new ones. An Opener is an explicit, injected
// resource: there is exactly one managed tab per Opener, and callers share
// one Opener per session. Not safe for concurrent use; link opens are
// user-initiated and serialized.
type Opener struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	verbose     bool
}

// NewOpener creates an Opener. No browser is started until the first Open.
func NewOpener(verbose bool) *Opener {
	return &Opener{verbose: verbose}
}

// Open navigates the managed tab to url, starting the browser and tab if
// needed. If the user closed the tab since the last call, a fresh tab is
// opened and becomes the managed one.
func (o *Opener) Open(ctx context.Context, url string) error {
	if o.tabAlive() {
		if o.verbose {
			log.Printf("[TAB] Reusing tab for: %s", url)
		}
		if err := chromedp.Run(o.tabCtx, chromedp.Navigate(url)); err == nil {
			return nil
		}
		// Tab is gone (closed by the user or browser exited); drop the
		// handle and fall through to a fresh one.
		o.dropTab()
	}

	if o.allocCtx == nil {
		o.allocCtx, o.allocCancel = chromedp.NewExecAllocator(ctx,
			append(chromedp.DefaultExecAllocatorOptions[:],
				// The tab is for the user to browse, not for scraping.
				chromedp.Flag("headless", false),
			)...,
		)
	}

	o.tabCtx, o.tabCancel = chromedp.NewContext(o.allocCtx)
	if o.verbose {
		log.Printf("[TAB] Opening new tab for: %s", url)
	}
	if err := chromedp.Run(o.tabCtx, chromedp.Navigate(url)); err != nil {
		o.dropTab()
		return &OpenError{URL: url, Cause: err}
	}
	return nil
}

// IsOpen reports whether the managed tab is currently alive.
func (o *Opener) IsOpen() bool {
	return o.tabAlive()
}

// Close shuts down the managed tab and the browser it lives in.
func (o *Opener) Close() {
	o.dropTab()
	if o.allocCancel != nil {
		o.allocCancel()
		o.allocCtx = nil
		o.allocCancel = nil
	}
}

func (o *Opener) tabAlive() bool {
	return o.tabCtx != nil && o.tabCtx.Err() == nil
}

func (o *Opener) dropTab() {
	if o.tabCancel != nil {
		o.tabCancel()
	}
	o.tabCtx = nil
	o.tabCancel = nil
}
