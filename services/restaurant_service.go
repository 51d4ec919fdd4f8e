package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/pkg/rbac"
	"github.com/GouravKumar19/slooze/repository"
	"github.com/GouravKumar19/slooze/utils"
)

type RestaurantService struct {
	DB   *gorm.DB
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo}
}

type RestaurantSummary struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Image         string         `json:"image"`
	Cuisine       string         `json:"cuisine"`
	Rating        float64        `json:"rating"`
	Country       entity.Country `json:"country"`
	MenuItemCount int64          `json:"menuItemCount"`
}

// List returns restaurants visible to the caller: every country for admins,
// the caller's own country for everyone else.
func (s *RestaurantService) List(claims *utils.Claims) ([]RestaurantSummary, error) {
	var countryID *uint
	if claims.Role != entity.RoleAdmin {
		countryID = &claims.CountryID
	}

	restaurants, err := s.Repo.List(countryID)
	if err != nil {
		return nil, err
	}

	out := make([]RestaurantSummary, 0, len(restaurants))
	for _, r := range restaurants {
		cnt, err := s.Repo.MenuItemCount(r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, RestaurantSummary{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			Image:         r.Image,
			Cuisine:       r.Cuisine,
			Rating:        r.Rating,
			Country:       r.Country,
			MenuItemCount: cnt,
		})
	}
	return out, nil
}

// Detail returns one restaurant with its available menu, gated by country.
func (s *RestaurantService) Detail(claims *utils.Claims, id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.GetWithMenu(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("restaurant not found")
	}
	if err != nil {
		return nil, err
	}

	if !rbac.CanAccessCountry(claims.Role, claims.CountryID, rest.CountryID) {
		return nil, forbidden("this restaurant is not available in your region")
	}
	return rest, nil
}
