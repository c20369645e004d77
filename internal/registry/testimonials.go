package registry

import (
	"fmt"

	"registration-api/internal/models"
)

func (s *Service) ListTestimonials() ([]models.TestimonialView, error) {
	testimonials, err := s.DB.GetTestimonials()
	if err != nil {
		return nil, fmt.Errorf("fetch testimonials: %w", err)
	}
	views := make([]models.TestimonialView, 0, len(testimonials))
	for _, testimonial := range testimonials {
		views = append(views, models.NewTestimonialView(testimonial))
	}
	return views, nil
}

func (s *Service) AddTestimonial(patch models.TestimonialPatch) (models.TestimonialView, error) {
	var testimonial models.Testimonial
	patch.Apply(&testimonial)

	if err := s.DB.CreateTestimonial(&testimonial); err != nil {
		return models.TestimonialView{}, fmt.Errorf("create testimonial: %w", err)
	}
	s.Logger.LogQuery("INSERT", "testimonials", fmt.Sprintf("testimonial %d created", testimonial.ID))
	return models.NewTestimonialView(testimonial), nil
}

func (s *Service) UpdateTestimonial(id int64, patch models.TestimonialPatch) (models.TestimonialView, error) {
	testimonial, err := s.DB.GetTestimonialByID(id)
	if err != nil {
		return models.TestimonialView{}, fmt.Errorf("testimonial %d: %w", id, err)
	}

	patch.Apply(testimonial)
	if err := s.DB.UpdateTestimonial(*testimonial); err != nil {
		return models.TestimonialView{}, fmt.Errorf("update testimonial %d: %w", id, err)
	}
	s.Logger.LogQuery("UPDATE", "testimonials", fmt.Sprintf("testimonial %d updated", id))
	return models.NewTestimonialView(*testimonial), nil
}

func (s *Service) DeleteTestimonial(id int64) (models.TestimonialView, error) {
	testimonial, err := s.DB.GetTestimonialByID(id)
	if err != nil {
		return models.TestimonialView{}, fmt.Errorf("testimonial %d: %w", id, err)
	}

	if err := s.DB.DeleteTestimonial(id); err != nil {
		return models.TestimonialView{}, fmt.Errorf("delete testimonial %d: %w", id, err)
	}
	s.Logger.LogQuery("DELETE", "testimonials", fmt.Sprintf("testimonial %d removed", id))
	return models.NewTestimonialView(*testimonial), nil
}
