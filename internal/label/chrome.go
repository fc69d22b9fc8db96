package label

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeCapturer drives a headless Chrome. With an empty WebSocket URL it
// launches a local browser per capture, otherwise it attaches to the
// remote one.
type ChromeCapturer struct {
	wsURL   string
	timeout time.Duration
}

func NewChromeCapturer(wsURL string, timeout time.Duration) *ChromeCapturer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeCapturer{wsURL: wsURL, timeout: timeout}
}

func (c *ChromeCapturer) CapturePDF(ctx context.Context, pageURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var allocCtx context.Context
	var allocCancel context.CancelFunc
	if c.wsURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, c.wsURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	}
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome capture of %s: %w", pageURL, err)
	}
	return pdf, nil
}
