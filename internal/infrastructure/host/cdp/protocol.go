package cdp

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/browser"
	cdproto "github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
)

// protocol is the subset of the DevTools protocol the host adapter needs.
type protocol interface {
	Targets(ctx context.Context) ([]*target.Info, error)
	WindowForTarget(ctx context.Context, id target.ID) (browser.WindowID, *browser.Bounds, error)
	CreateTarget(ctx context.Context, url string, newWindow, background bool) (target.ID, error)
	SetWindowBounds(ctx context.Context, id browser.WindowID, bounds *browser.Bounds) error
	ActivateTarget(ctx context.Context, id target.ID) error
	CloseTarget(ctx context.Context, id target.ID) error
}

// chromedpProtocol sends browser-level commands over a chromedp connection.
type chromedpProtocol struct {
	browser *chromedp.Browser
}

// dial connects to a running browser's DevTools endpoint without opening a tab.
func dial(url string) (*chromedpProtocol, context.CancelFunc, error) {
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(context.Background(), url)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		browserCancel()
		allocCancel()
	}

	// Targets allocates the browser connection on first use.
	if _, err := chromedp.Targets(browserCtx); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("connect to %s: %w", url, err)
	}
	c := chromedp.FromContext(browserCtx)
	if c == nil || c.Browser == nil {
		cancel()
		return nil, nil, fmt.Errorf("connect to %s: no browser", url)
	}
	return &chromedpProtocol{browser: c.Browser}, cancel, nil
}

func (p *chromedpProtocol) exec(ctx context.Context) context.Context {
	return cdproto.WithExecutor(ctx, p.browser)
}

func (p *chromedpProtocol) Targets(ctx context.Context) ([]*target.Info, error) {
	return target.GetTargets().Do(p.exec(ctx))
}

func (p *chromedpProtocol) WindowForTarget(ctx context.Context, id target.ID) (browser.WindowID, *browser.Bounds, error) {
	return browser.GetWindowForTarget().WithTargetID(id).Do(p.exec(ctx))
}

func (p *chromedpProtocol) CreateTarget(ctx context.Context, url string, newWindow, background bool) (target.ID, error) {
	return target.CreateTarget(url).WithNewWindow(newWindow).WithBackground(background).Do(p.exec(ctx))
}

func (p *chromedpProtocol) SetWindowBounds(ctx context.Context, id browser.WindowID, bounds *browser.Bounds) error {
	return browser.SetWindowBounds(id, bounds).Do(p.exec(ctx))
}

func (p *chromedpProtocol) ActivateTarget(ctx context.Context, id target.ID) error {
	return target.ActivateTarget(id).Do(p.exec(ctx))
}

func (p *chromedpProtocol) CloseTarget(ctx context.Context, id target.ID) error {
	return target.CloseTarget(id).Do(p.exec(ctx))
}
