package estimation

import (
	"errors"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

// EstimateInput holds the photo to analyze as a base64 data URI.
type EstimateInput struct {
	Image string
}

// Validate checks the image and returns it decoded.
func (i EstimateInput) Validate() (domain.MealImage, error) {
	img, err := domain.ParseMealImage(i.Image)
	if err == nil {
		return img, nil
	}

	msg := err.Error()
	if errors.Is(err, domain.ErrImageMissing) {
		msg = "required"
	}
	return domain.MealImage{}, domain.NewValidationError("image", msg)
}
