package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	snapshotWidth   = 1280
	cardsPerRow     = 3
	snapshotTimeout = 20 * time.Second
)

// SnapshotFunc turns an HTML document into a PNG of the given viewport.
type SnapshotFunc func(ctx context.Context, html string, width int, height int64) ([]byte, error)

type Renderer struct {
	tpl      *template.Template
	snapshot SnapshotFunc
}

func NewRenderer() *Renderer {
	return &Renderer{
		tpl:      template.Must(template.New("container").Parse(containerTemplate)),
		snapshot: chromeSnapshot,
	}
}

// WithSnapshot replaces the headless Chrome snapshotter.
func (r *Renderer) WithSnapshot(fn SnapshotFunc) *Renderer {
	r.snapshot = fn
	return r
}

func (r *Renderer) HTML(view *ContainerView) (string, error) {
	var builder strings.Builder
	if err := r.tpl.Execute(&builder, view); err != nil {
		return "", fmt.Errorf("failed to execute container template: %w", err)
	}
	return builder.String(), nil
}

// PNG renders the view and captures it as an image, the way the host
// exports a visualization to a thumbnail.
func (r *Renderer) PNG(ctx context.Context, view *ContainerView) ([]byte, error) {
	html, err := r.HTML(view)
	if err != nil {
		return nil, err
	}

	buf, err := r.snapshot(ctx, html, snapshotWidth, estimateHeight(len(view.Cards), view.Notice != "" || len(view.Errors) > 0))
	if err != nil {
		return nil, fmt.Errorf("failed to capture snapshot: %w", err)
	}
	return buf, nil
}

func estimateHeight(cards int, banner bool) int64 {
	const (
		basePadding  = 48
		titleHeight  = 40
		bannerHeight = 56
		rowHeight    = 460
	)
	height := basePadding + titleHeight
	if banner {
		height += bannerHeight
	}
	rows := (cards + cardsPerRow - 1) / cardsPerRow
	if rows < 1 {
		rows = 1
	}
	height += rows * rowHeight
	return int64(height)
}

func chromeSnapshot(ctx context.Context, html string, width int, height int64) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))
	var buf []byte
	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(int64(width), height),
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("#mod-container", chromedp.ByQuery),
		// icons are remote images
		chromedp.Sleep(300*time.Millisecond),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
