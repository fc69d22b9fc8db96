// Package label renders printable order labels by capturing the print
// layout page of the dashboard as a PDF.
package label

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/metrics"
)

var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrEmptyCode         = errors.New("order code is required")
)

var locales = map[string]struct{}{"ar": {}, "en": {}}

// Capturer turns a page URL into a PDF document.
type Capturer interface {
	CapturePDF(ctx context.Context, pageURL string) ([]byte, error)
}

type Service struct {
	baseURL  string
	capturer Capturer
	logger   *zap.Logger
}

func NewService(baseURL string, capturer Capturer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		baseURL:  strings.TrimRight(baseURL, "/"),
		capturer: capturer,
		logger:   logger,
	}
}

// PageURL is the print layout address for code in locale.
func (s *Service) PageURL(code, locale string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}
	if _, ok := locales[locale]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return fmt.Sprintf("%s/%s/print/orders/%s", s.baseURL, locale, url.PathEscape(code)), nil
}

// Render returns the whole PDF or an error; a failed capture is never
// retried here.
func (s *Service) Render(ctx context.Context, code, locale string) ([]byte, error) {
	pageURL, err := s.PageURL(code, locale)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pdf, err := s.capturer.CapturePDF(ctx, pageURL)
	metrics.LabelRenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("render_label").Inc()
		s.logger.Error("Failed to capture order label", zap.String("order_code", code), zap.String("url", pageURL), zap.Error(err))
		return nil, fmt.Errorf("failed to render label for order %s: %w", code, err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("failed to render label for order %s: empty document", code)
	}
	return pdf, nil
}
