package services

import (
	"errors"

	"github.com/shinyuna/nuber-eats-back/entity"
	"github.com/shinyuna/nuber-eats-back/pkg/apperr"
	"github.com/shinyuna/nuber-eats-back/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type CreateRestaurantReq struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	CoverImg   string `json:"coverImg"`
	CategoryID uint   `json:"categoryId" binding:"required"`
}

func (s *RestaurantService) Create(ownerID uint, req *CreateRestaurantReq) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{
		Name:       req.Name,
		Address:    req.Address,
		CoverImg:   req.CoverImg,
		CategoryID: req.CategoryID,
		UserID:     ownerID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Update(ownerID, restID uint, updates map[string]any) (*entity.Restaurant, error) {
	owned, err := s.Repo.IsOwnedBy(restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}
	if err := s.Repo.Update(restID, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(restID)
}

func (s *RestaurantService) List(categoryID *uint, page, limit int) ([]entity.Restaurant, int64, error) {
	return s.Repo.List(categoryID, page, limit)
}

// Detail returns the restaurant with its menu, options included.
func (s *RestaurantService) Detail(restID uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByIDWithMenu(restID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Restaurant not found.")
		}
		return nil, err
	}
	return rest, nil
}
