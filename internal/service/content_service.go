package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// ContentService implements CRUD for the three site content entities:
// services, news posts, and FAQs. Mutations record which admin made them.
type ContentService struct {
	serviceRepo *repository.ServiceRepository
	newsRepo    *repository.NewsRepository
	faqRepo     *repository.FAQRepository
	activityLog *repository.ActivityLogRepository
}

// NewContentService constructs a ContentService.
func NewContentService(
	serviceRepo *repository.ServiceRepository,
	newsRepo *repository.NewsRepository,
	faqRepo *repository.FAQRepository,
	activityLog *repository.ActivityLogRepository,
) *ContentService {
	return &ContentService{
		serviceRepo: serviceRepo,
		newsRepo:    newsRepo,
		faqRepo:     faqRepo,
		activityLog: activityLog,
	}
}

func (s *ContentService) logActivity(action string, adminID string, details interface{}) {
	var actor *string
	if adminID != "" {
		actor = &adminID
	}
	if err := s.activityLog.Insert(action, actor, details); err != nil {
		log.Error().Err(err).Str("action", action).Msg("Failed to log content activity")
	}
}

// --- services ---

// CreateServiceRequest carries the fields for a new service offering.
type CreateServiceRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	IsActive    *bool            `json:"is_active"`
}

// ListServices returns all services, newest first.
func (s *ContentService) ListServices() ([]models.Service, error) {
	return s.serviceRepo.List()
}

// CreateService inserts a service and logs the mutation.
func (s *ContentService) CreateService(req *CreateServiceRequest, adminID string) (*models.Service, error) {
	svc := &models.Service{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Create(svc); err != nil {
		return nil, err
	}

	s.logActivity("service_created", adminID, map[string]interface{}{
		"service_id": svc.ID,
		"title":      svc.Title,
	})
	return svc, nil
}

// UpdateService applies a partial update and logs the mutation.
func (s *ContentService) UpdateService(id string, upd *repository.ServiceUpdate, adminID string) (*models.Service, error) {
	svc, err := s.serviceRepo.Update(id, upd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrRecordNotFound
		}
		return nil, err
	}

	s.logActivity("service_updated", adminID, map[string]interface{}{
		"service_id": svc.ID,
		"title":      svc.Title,
	})
	return svc, nil
}

// DeleteService removes a service and logs the mutation.
func (s *ContentService) DeleteService(id string, adminID string) error {
	deleted, err := s.serviceRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrRecordNotFound
	}

	s.logActivity("service_deleted", adminID, map[string]interface{}{
		"service_id": id,
	})
	return nil
}

// --- news ---

// CreateNewsRequest carries the fields for a new news post.
type CreateNewsRequest struct {
	Title       string  `json:"title" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Excerpt     *string `json:"excerpt"`
	ImageURL    *string `json:"image_url"`
	IsPublished *bool   `json:"is_published"`
}

// ListNews returns all news posts, newest first.
func (s *ContentService) ListNews() ([]models.NewsPost, error) {
	return s.newsRepo.List()
}

// CreateNews inserts a news post and logs the mutation.
func (s *ContentService) CreateNews(req *CreateNewsRequest, adminID string) (*models.NewsPost, error) {
	post := &models.NewsPost{
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		IsPublished: true,
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	if err := s.newsRepo.Create(post); err != nil {
		return nil, err
	}

	s.logActivity("news_post_created", adminID, map[string]interface{}{
		"post_id": post.ID,
		"title":   post.Title,
	})
	return post, nil
}

// UpdateNews applies a partial update and logs the mutation.
func (s *ContentService) UpdateNews(id string, upd *repository.NewsUpdate, adminID string) (*models.NewsPost, error) {
	post, err := s.newsRepo.Update(id, upd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrRecordNotFound
		}
		return nil, err
	}

	s.logActivity("news_post_updated", adminID, map[string]interface{}{
		"post_id": post.ID,
		"title":   post.Title,
	})
	return post, nil
}

// DeleteNews removes a news post and logs the mutation.
func (s *ContentService) DeleteNews(id string, adminID string) error {
	deleted, err := s.newsRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrRecordNotFound
	}

	s.logActivity("news_post_deleted", adminID, map[string]interface{}{
		"post_id": id,
	})
	return nil
}

// --- faqs ---

// CreateFAQRequest carries the fields for a new FAQ.
type CreateFAQRequest struct {
	Question  string  `json:"question" binding:"required"`
	Answer    string  `json:"answer" binding:"required"`
	Category  *string `json:"category"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

// ListFAQs returns all FAQs in display order.
func (s *ContentService) ListFAQs() ([]models.FAQ, error) {
	return s.faqRepo.List()
}

// CreateFAQ inserts a FAQ and logs the mutation.
func (s *ContentService) CreateFAQ(req *CreateFAQRequest, adminID string) (*models.FAQ, error) {
	faq := &models.FAQ{
		Question: strings.TrimSpace(req.Question),
		Answer:   req.Answer,
		Category: req.Category,
		IsActive: true,
	}
	if req.SortOrder != nil {
		faq.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := s.faqRepo.Create(faq); err != nil {
		return nil, err
	}

	s.logActivity("faq_created", adminID, map[string]interface{}{
		"faq_id":   faq.ID,
		"question": faq.Question,
	})
	return faq, nil
}

// UpdateFAQ applies a partial update and logs the mutation.
func (s *ContentService) UpdateFAQ(id string, upd *repository.FAQUpdate, adminID string) (*models.FAQ, error) {
	faq, err := s.faqRepo.Update(id, upd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrRecordNotFound
		}
		return nil, err
	}

	s.logActivity("faq_updated", adminID, map[string]interface{}{
		"faq_id":   faq.ID,
		"question": faq.Question,
	})
	return faq, nil
}

// DeleteFAQ removes a FAQ and logs the mutation.
func (s *ContentService) DeleteFAQ(id string, adminID string) error {
	deleted, err := s.faqRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrRecordNotFound
	}

	s.logActivity("faq_deleted", adminID, map[string]interface{}{
		"faq_id": id,
	})
	return nil
}
