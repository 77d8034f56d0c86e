package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer loads a page in headless Chrome so that JS-generated markup is
// visible to the scrapers. Used when --render is set; the plain Fetcher is
// the default path.
type Renderer struct {
	Timeout time.Duration
}

func NewRenderer() *Renderer {
	return &Renderer{Timeout: 45 * time.Second}
}

// Render navigates to pageURL, waits for the DOM to settle and returns the
// serialized document as a Page. Header and status are not available through
// the devtools session here, so StatusCode is assumed 200 on success.
func (r *Renderer) Render(ctx context.Context, pageURL string) (*Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(defaultUserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.Timeout)
	defer cancelRun()

	start := time.Now()
	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", pageURL, err)
	}

	return &Page{
		URL:        pageURL,
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(html),
		FetchTime:  time.Since(start),
		Rendered:   true,
	}, nil
}
