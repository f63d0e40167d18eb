package extract

import (
	"bytes"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"
	"golang.org/x/sync/errgroup"

	"github.com/feichai0017/file-renamer/pkg/logger"
)

// pdfPageWorkers bounds concurrent page extraction within one document.
const pdfPageWorkers = 4

// PDFExtractor pulls plain text from every page of a PDF. Pages are
// extracted in parallel but reassembled in order.
type PDFExtractor struct {
	logger logger.Logger
}

func NewPDFExtractor(log logger.Logger) *PDFExtractor {
	return &PDFExtractor{logger: log}
}

func (e *PDFExtractor) Extract(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, reader.Size())
	if err != nil {
		return "", err
	}

	numPages := pdfReader.NumPage()
	pages := make([]string, numPages)

	var g errgroup.Group
	g.SetLimit(pdfPageWorkers)
	var mu sync.Mutex

	for i := 1; i <= numPages; i++ {
		pageNum := i
		g.Go(func() error {
			page := pdfReader.Page(pageNum)
			if page.V.IsNull() {
				return nil
			}
			text, err := page.GetPlainText(nil)
			if err != nil {
				// A single unreadable page withholds its text but does
				// not fail the document.
				e.logger.Debug("skipping unreadable pdf page",
					logger.String("file", path),
					logger.Int("page", pageNum),
					logger.Error(err),
				)
				return nil
			}
			mu.Lock()
			pages[pageNum-1] = text
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for _, text := range pages {
		if text == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
