package service

import (
	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/repository"
)

// DashboardService aggregates the counters shown on the admin dashboard and
// exposes the admin-only listings behind it.
type DashboardService struct {
	serviceRepo *repository.ServiceRepository
	newsRepo    *repository.NewsRepository
	faqRepo     *repository.FAQRepository
	contactRepo *repository.ContactRepository
	paymentRepo *repository.PaymentRepository
	activityLog *repository.ActivityLogRepository
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(
	serviceRepo *repository.ServiceRepository,
	newsRepo *repository.NewsRepository,
	faqRepo *repository.FAQRepository,
	contactRepo *repository.ContactRepository,
	paymentRepo *repository.PaymentRepository,
	activityLog *repository.ActivityLogRepository,
) *DashboardService {
	return &DashboardService{
		serviceRepo: serviceRepo,
		newsRepo:    newsRepo,
		faqRepo:     faqRepo,
		contactRepo: contactRepo,
		paymentRepo: paymentRepo,
		activityLog: activityLog,
	}
}

// Stats holds per-entity counts for the dashboard.
type Stats struct {
	Services           int `json:"services"`
	NewsPosts          int `json:"news_posts"`
	FAQs               int `json:"faqs"`
	ContactMessages    int `json:"contact_messages"`
	NewContactMessages int `json:"new_contact_messages"`
	Payments           int `json:"payments"`
}

// GetStats counts every entity. A failure on any counter aborts: the
// dashboard would rather show an error than silently wrong numbers.
func (s *DashboardService) GetStats() (*Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.Services, err = s.serviceRepo.Count(); err != nil {
		return nil, err
	}
	if stats.NewsPosts, err = s.newsRepo.Count(); err != nil {
		return nil, err
	}
	if stats.FAQs, err = s.faqRepo.Count(); err != nil {
		return nil, err
	}
	if stats.ContactMessages, err = s.contactRepo.Count(); err != nil {
		return nil, err
	}
	if stats.NewContactMessages, err = s.contactRepo.CountByStatus(models.ContactStatusNew); err != nil {
		return nil, err
	}
	if stats.Payments, err = s.paymentRepo.Count(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListContactMessages returns paginated contact submissions, newest first.
func (s *DashboardService) ListContactMessages(page, limit int) ([]models.ContactMessage, int, error) {
	return s.contactRepo.List(page, limit)
}

// RecentActivity returns the newest audit entries.
func (s *DashboardService) RecentActivity(limit int) ([]models.ActivityLog, error) {
	return s.activityLog.ListRecent(limit)
}
