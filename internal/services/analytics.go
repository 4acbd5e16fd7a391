package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"dovvia/internal/domain"
	"dovvia/internal/metrics"
)

// AnalyticsService records page views. It must never surface an error
// to the visitor; callers log and swallow failures.
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// PageViewPayload is the client-reported part of a page view.
type PageViewPayload struct {
	PagePath     string `json:"pagePath"`
	PageTitle    string `json:"pageTitle"`
	Referrer     string `json:"referrer"`
	SessionID    string `json:"sessionId"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Language     string `json:"language"`
	Timezone     string `json:"timezone"`

	// Client-supplied geo fallback, used when the request carries no
	// geo headers.
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	Region    string `json:"region,omitempty"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// RequestMeta is the server-observed part of a page view.
type RequestMeta struct {
	UserAgent string
	IPAddress string
	Country   string
	City      string
	Region    string
	Latitude  string
	Longitude string
}

// Record classifies and stores one page view.
func (s *AnalyticsService) Record(ctx context.Context, p *PageViewPayload, meta *RequestMeta) error {
	view := &domain.PageView{
		PagePath:     p.PagePath,
		PageTitle:    p.PageTitle,
		Referrer:     p.Referrer,
		UserAgent:    meta.UserAgent,
		DeviceType:   ClassifyDevice(meta.UserAgent),
		Browser:      ClassifyBrowser(meta.UserAgent),
		OS:           ClassifyOS(meta.UserAgent),
		Country:      firstNonEmpty(meta.Country, p.Country),
		City:         firstNonEmpty(meta.City, p.City),
		Region:       firstNonEmpty(meta.Region, p.Region),
		IPAddress:    meta.IPAddress,
		Latitude:     firstNonEmpty(meta.Latitude, p.Latitude),
		Longitude:    firstNonEmpty(meta.Longitude, p.Longitude),
		SessionID:    p.SessionID,
		ScreenWidth:  p.ScreenWidth,
		ScreenHeight: p.ScreenHeight,
		Language:     p.Language,
		Timezone:     p.Timezone,
	}

	if err := s.db.WithContext(ctx).Create(view).Error; err != nil {
		return fmt.Errorf("failed to save page view: %w", err)
	}

	metrics.RecordPageView()
	return nil
}

// CountBySession returns the number of views recorded for a session.
func (s *AnalyticsService) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.PageView{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		log.Printf("[ANALYTICS] CountBySession failed: database error: %v", err)
		return 0, fmt.Errorf("failed to count page views: %w", err)
	}
	return count, nil
}

var (
	mobileRegex = regexp.MustCompile(`(?i)mobile`)
	tabletRegex = regexp.MustCompile(`(?i)tablet|ipad`)
)

// ClassifyDevice buckets a user agent into mobile, tablet or desktop.
// The tablet check runs first: iPad user agents also carry "Mobile",
// and an iPad must always classify as tablet.
func ClassifyDevice(userAgent string) string {
	if tabletRegex.MatchString(userAgent) {
		return "tablet"
	}
	if mobileRegex.MatchString(userAgent) {
		return "mobile"
	}
	return "desktop"
}

// ClassifyBrowser returns the browser family for a user agent. Order
// matters: the Chrome check excludes Edge and the Safari check
// excludes Chrome, since those agents embed each other's tokens.
func ClassifyBrowser(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Chrome") && !strings.Contains(userAgent, "Edg"):
		return "Chrome"
	case strings.Contains(userAgent, "Safari") && !strings.Contains(userAgent, "Chrome"):
		return "Safari"
	case strings.Contains(userAgent, "Edg"):
		return "Edge"
	case strings.Contains(userAgent, "Opera") || strings.Contains(userAgent, "OPR"):
		return "Opera"
	}
	return "Unknown"
}

// ClassifyOS returns the OS family for a user agent.
func ClassifyOS(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Windows NT"):
		return "Windows"
	case strings.Contains(userAgent, "Mac OS X"):
		return "macOS"
	case strings.Contains(userAgent, "Linux"):
		return "Linux"
	case strings.Contains(userAgent, "Android"):
		return "Android"
	case strings.Contains(userAgent, "iOS"), strings.Contains(userAgent, "iPhone"), strings.Contains(userAgent, "iPad"):
		return "iOS"
	}
	return "Unknown"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
