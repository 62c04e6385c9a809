// File: services/content/content.go
//
// Package content owns the marketing-site collections: programmes,
// facilities, testimonials, gallery images, achievements and contact
// messages.
package content

import (
	"context"
	"errors"

	"go.uber.org/zap"

	contentRepo "pitchside/database/repository/content"
	programRepo "pitchside/database/repository/program"
	"pitchside/models"
	storageSvc "pitchside/services/storage"
	"pitchside/utils"
)

// ContentService is the admin-facing and public-facing surface over the
// content collections.
type ContentService interface {
	CreateProgram(ctx context.Context, in models.ProgramInput) (*models.Program, error)
	GetProgram(ctx context.Context, id string) (*models.Program, error)
	UpdateProgram(ctx context.Context, id string, in models.ProgramInput) (*models.Program, error)
	DeleteProgram(ctx context.Context, id string) error
	ListPrograms(ctx context.Context, activeOnly bool) ([]models.Program, error)

	CreateFacility(ctx context.Context, in models.FacilityInput) (*models.Facility, error)
	UpdateFacility(ctx context.Context, id string, in models.FacilityInput) (*models.Facility, error)
	DeleteFacility(ctx context.Context, id string) error
	ListFacilities(ctx context.Context) ([]models.Facility, error)

	CreateTestimonial(ctx context.Context, in models.TestimonialInput) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, in models.TestimonialInput) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
	ListTestimonials(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error)

	AddGalleryImage(ctx context.Context, in models.GalleryImageInput) (*models.GalleryImage, error)
	GetGalleryImage(ctx context.Context, id string) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error
	ListGallery(ctx context.Context, category string) ([]models.GalleryImage, error)

	CreateAchievement(ctx context.Context, in models.AchievementInput) (*models.Achievement, error)
	UpdateAchievement(ctx context.Context, id string, in models.AchievementInput) (*models.Achievement, error)
	DeleteAchievement(ctx context.Context, id string) error
	ListAchievements(ctx context.Context) ([]models.Achievement, error)

	SubmitContactMessage(ctx context.Context, in models.ContactMessageInput) (*models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id string) error
	DeleteContactMessage(ctx context.Context, id string) error
	ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error)
}

// DefaultContentService is the concrete implementation.
type DefaultContentService struct {
	Programs     programRepo.ProgramRepository
	Facilities   contentRepo.FacilityRepository
	Testimonials contentRepo.TestimonialRepository
	Gallery      contentRepo.GalleryRepository
	Achievements contentRepo.AchievementRepository
	Contacts     contentRepo.ContactRepository
	Storage      storageSvc.StorageService // nil disables media cleanup
}

func mapRepoErr(err error, resource, id string) error {
	if errors.Is(err, contentRepo.ErrNotFound) || errors.Is(err, programRepo.ErrNotFound) {
		return utils.NotFoundError(resource, id)
	}
	return utils.StoreError("persistence failure on "+resource, err)
}

// Programmes.

func (s *DefaultContentService) CreateProgram(ctx context.Context, in models.ProgramInput) (*models.Program, error) {
	p := &models.Program{
		Name:          in.Name,
		Description:   in.Description,
		AgeGroup:      in.AgeGroup,
		Price:         in.Price,
		DurationWeeks: in.DurationWeeks,
		Schedule:      in.Schedule,
		Active:        true,
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := s.Programs.Create(ctx, p); err != nil {
		return nil, mapRepoErr(err, "program", "")
	}
	return p, nil
}

func (s *DefaultContentService) GetProgram(ctx context.Context, id string) (*models.Program, error) {
	p, err := s.Programs.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "program", id)
	}
	return p, nil
}

func (s *DefaultContentService) UpdateProgram(ctx context.Context, id string, in models.ProgramInput) (*models.Program, error) {
	p, err := s.GetProgram(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.AgeGroup = in.AgeGroup
	p.Price = in.Price
	p.DurationWeeks = in.DurationWeeks
	p.Schedule = in.Schedule
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := s.Programs.Update(ctx, p); err != nil {
		return nil, mapRepoErr(err, "program", id)
	}
	return p, nil
}

func (s *DefaultContentService) DeleteProgram(ctx context.Context, id string) error {
	if err := s.Programs.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "program", id)
	}
	return nil
}

func (s *DefaultContentService) ListPrograms(ctx context.Context, activeOnly bool) ([]models.Program, error) {
	programs, err := s.Programs.List(ctx, activeOnly)
	if err != nil {
		return nil, mapRepoErr(err, "program", "")
	}
	return programs, nil
}

// Facilities.

func (s *DefaultContentService) CreateFacility(ctx context.Context, in models.FacilityInput) (*models.Facility, error) {
	f := &models.Facility{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Features:    in.Features,
	}
	if err := s.Facilities.Create(ctx, f); err != nil {
		return nil, mapRepoErr(err, "facility", "")
	}
	return f, nil
}

func (s *DefaultContentService) UpdateFacility(ctx context.Context, id string, in models.FacilityInput) (*models.Facility, error) {
	f, err := s.Facilities.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "facility", id)
	}
	f.Name = in.Name
	f.Description = in.Description
	if in.ImageURL != "" {
		f.ImageURL = in.ImageURL
	}
	f.Features = in.Features
	if err := s.Facilities.Update(ctx, f); err != nil {
		return nil, mapRepoErr(err, "facility", id)
	}
	return f, nil
}

func (s *DefaultContentService) DeleteFacility(ctx context.Context, id string) error {
	if err := s.Facilities.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "facility", id)
	}
	return nil
}

func (s *DefaultContentService) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	facilities, err := s.Facilities.List(ctx)
	if err != nil {
		return nil, mapRepoErr(err, "facility", "")
	}
	return facilities, nil
}

// Testimonials.

func (s *DefaultContentService) CreateTestimonial(ctx context.Context, in models.TestimonialInput) (*models.Testimonial, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}
	t := &models.Testimonial{
		Author: in.Author,
		Role:   in.Role,
		Quote:  in.Quote,
		Rating: in.Rating,
	}
	if in.Published != nil {
		t.Published = *in.Published
	}
	if err := s.Testimonials.Create(ctx, t); err != nil {
		return nil, mapRepoErr(err, "testimonial", "")
	}
	return t, nil
}

func (s *DefaultContentService) UpdateTestimonial(ctx context.Context, id string, in models.TestimonialInput) (*models.Testimonial, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}
	t, err := s.Testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "testimonial", id)
	}
	t.Author = in.Author
	t.Role = in.Role
	t.Quote = in.Quote
	t.Rating = in.Rating
	if in.Published != nil {
		t.Published = *in.Published
	}
	if err := s.Testimonials.Update(ctx, t); err != nil {
		return nil, mapRepoErr(err, "testimonial", id)
	}
	return t, nil
}

func (s *DefaultContentService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.Testimonials.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "testimonial", id)
	}
	return nil
}

func (s *DefaultContentService) ListTestimonials(ctx context.Context, publishedOnly bool) ([]models.Testimonial, error) {
	testimonials, err := s.Testimonials.List(ctx, publishedOnly)
	if err != nil {
		return nil, mapRepoErr(err, "testimonial", "")
	}
	return testimonials, nil
}

// Gallery.

func (s *DefaultContentService) AddGalleryImage(ctx context.Context, in models.GalleryImageInput) (*models.GalleryImage, error) {
	g := &models.GalleryImage{
		Title:    in.Title,
		Category: in.Category,
		ImageURL: in.ImageURL,
		PublicID: in.PublicID,
	}
	if err := s.Gallery.Create(ctx, g); err != nil {
		return nil, mapRepoErr(err, "gallery image", "")
	}
	return g, nil
}

func (s *DefaultContentService) GetGalleryImage(ctx context.Context, id string) (*models.GalleryImage, error) {
	g, err := s.Gallery.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "gallery image", id)
	}
	return g, nil
}

// DeleteGalleryImage removes the record and the stored media asset
// behind it. Asset cleanup is best-effort: a storage failure is logged
// and does not keep the image listed.
func (s *DefaultContentService) DeleteGalleryImage(ctx context.Context, id string) error {
	g, err := s.GetGalleryImage(ctx, id)
	if err != nil {
		return err
	}
	if s.Storage != nil && g.PublicID != "" {
		if err := s.Storage.DeleteImage(ctx, g.PublicID); err != nil {
			zap.L().Warn("failed to delete gallery asset",
				zap.String("id", id),
				zap.String("public_id", g.PublicID),
				zap.Error(err),
			)
		}
	}
	if err := s.Gallery.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "gallery image", id)
	}
	return nil
}

func (s *DefaultContentService) ListGallery(ctx context.Context, category string) ([]models.GalleryImage, error) {
	images, err := s.Gallery.List(ctx, category)
	if err != nil {
		return nil, mapRepoErr(err, "gallery image", "")
	}
	return images, nil
}

// Achievements.

func (s *DefaultContentService) CreateAchievement(ctx context.Context, in models.AchievementInput) (*models.Achievement, error) {
	a := &models.Achievement{
		Title:       in.Title,
		Year:        in.Year,
		Description: in.Description,
	}
	if err := s.Achievements.Create(ctx, a); err != nil {
		return nil, mapRepoErr(err, "achievement", "")
	}
	return a, nil
}

func (s *DefaultContentService) UpdateAchievement(ctx context.Context, id string, in models.AchievementInput) (*models.Achievement, error) {
	a, err := s.Achievements.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "achievement", id)
	}
	a.Title = in.Title
	a.Year = in.Year
	a.Description = in.Description
	if err := s.Achievements.Update(ctx, a); err != nil {
		return nil, mapRepoErr(err, "achievement", id)
	}
	return a, nil
}

func (s *DefaultContentService) DeleteAchievement(ctx context.Context, id string) error {
	if err := s.Achievements.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "achievement", id)
	}
	return nil
}

func (s *DefaultContentService) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	achievements, err := s.Achievements.List(ctx)
	if err != nil {
		return nil, mapRepoErr(err, "achievement", "")
	}
	return achievements, nil
}

// Contact messages.

func (s *DefaultContentService) SubmitContactMessage(ctx context.Context, in models.ContactMessageInput) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.Contacts.Create(ctx, m); err != nil {
		return nil, mapRepoErr(err, "contact message", "")
	}
	return m, nil
}

func (s *DefaultContentService) MarkContactMessageRead(ctx context.Context, id string) error {
	if err := s.Contacts.MarkRead(ctx, id); err != nil {
		return mapRepoErr(err, "contact message", id)
	}
	return nil
}

func (s *DefaultContentService) DeleteContactMessage(ctx context.Context, id string) error {
	if err := s.Contacts.Delete(ctx, id); err != nil {
		return mapRepoErr(err, "contact message", id)
	}
	return nil
}

func (s *DefaultContentService) ListContactMessages(ctx context.Context, unreadOnly bool) ([]models.ContactMessage, error) {
	messages, err := s.Contacts.List(ctx, unreadOnly)
	if err != nil {
		return nil, mapRepoErr(err, "contact message", "")
	}
	return messages, nil
}
