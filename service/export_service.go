package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"estudio-luma-me/models"
)

// ExportService renders the portfolio press kit as a PDF. The merged
// catalog is laid out with an HTML template and printed through headless
// Chrome. Implements ExportServiceInterface
type ExportService struct {
	catalog CatalogServiceInterface
}

// NewExportService creates a new ExportService
func NewExportService(catalog CatalogServiceInterface) *ExportService {
	return &ExportService{catalog: catalog}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// paginateItems splits items into pages of 6 items each
func paginateItems(items []models.CatalogItem) [][]models.CatalogItem {
	const itemsPerPage = 6
	var pages [][]models.CatalogItem

	for i := 0; i < len(items); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}

	return pages
}

// RenderPortfolioHTML renders the portfolio template over the merged
// catalog.
func (s *ExportService) RenderPortfolioHTML(ctx context.Context) (string, error) {
	items := s.catalog.Combined(ctx)

	templateData := struct {
		Pages       [][]models.CatalogItem
		GeneratedAt string
	}{
		Pages:       paginateItems(items),
		GeneratedAt: time.Now().Format("2006-01-02"),
	}

	templatePath := filepath.Join("templates", "portfolio.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse portfolio template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute portfolio template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePortfolioPDF prints the rendered portfolio to an A4 PDF.
func (s *ExportService) GeneratePortfolioPDF(ctx context.Context) ([]byte, error) {
	htmlContent, err := s.RenderPortfolioHTML(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	// Navigate via data URI so the export needs no extra render endpoint.
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlContent))

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000), // 210mm at 96 DPI, tall enough for all pages
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		// Wait for remote portfolio images before printing.
		chromedp.Evaluate(`
			(function() {
				return Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
					return new Promise((resolve) => {
						if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
							resolve();
							return;
						}
						const timeout = setTimeout(() => resolve(), 5000);
						img.onload = () => { clearTimeout(timeout); resolve(); };
						img.onerror = () => { clearTimeout(timeout); resolve(); };
					});
				}));
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm (1mm = 0.03937 inches). Page breaks come
			// from CSS page-break-after in the template.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate portfolio PDF: %w", err)
	}

	return pdfBuf, nil
}
