package sitemeta

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validation errors.
var (
	ErrInvalidBaseURL    = errors.New("base url must be an absolute http(s) url")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyDescription  = errors.New("description is required")
	ErrNoKeywords        = errors.New("at least one keyword is required")
	ErrEmptyKeyword      = errors.New("keywords must not be blank")
	ErrInvalidPreviewURL = errors.New("preview image url is invalid")
)

// Validate reports every authoring defect in m. A nil result means the
// values are safe to render.
func (m Metadata) Validate() error {
	var errs []error
	if err := checkBaseURL(m.baseURL); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(m.title) == "" {
		errs = append(errs, ErrEmptyTitle)
	}
	if strings.TrimSpace(m.description) == "" {
		errs = append(errs, ErrEmptyDescription)
	}
	if len(m.keywords) == 0 {
		errs = append(errs, ErrNoKeywords)
	}
	for i, kw := range m.keywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, fmt.Errorf("%w: index %d", ErrEmptyKeyword, i))
		}
	}
	if strings.Trim(m.previewImagePath, "/") == "" {
		errs = append(errs, fmt.Errorf("%w: empty image path", ErrInvalidPreviewURL))
	} else if u, err := url.Parse(m.PreviewImageURL()); err != nil || !u.IsAbs() {
		errs = append(errs, ErrInvalidPreviewURL)
	}
	return errors.Join(errs...)
}
