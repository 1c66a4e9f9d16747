package services

import (
	"errors"

	"github.com/shinyuna/nuber-eats-back/entity"
	"github.com/shinyuna/nuber-eats-back/pkg/apperr"
	"github.com/shinyuna/nuber-eats-back/repository"

	"gorm.io/gorm"
)

type DishService struct {
	Repo     *repository.DishRepository
	RestRepo *repository.RestaurantRepository
}

func NewDishService(repo *repository.DishRepository, restRepo *repository.RestaurantRepository) *DishService {
	return &DishService{Repo: repo, RestRepo: restRepo}
}

type CreateDishReq struct {
	RestaurantID uint                `json:"restaurantId" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Price        int64               `json:"price" binding:"min=0"`
	Photo        string              `json:"photo"`
	Options      []entity.DishOption `json:"options"`
}

func (s *DishService) Create(ownerID uint, req *CreateDishReq) (*entity.Dish, error) {
	owned, err := s.RestRepo.IsOwnedBy(req.RestaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}

	dish := &entity.Dish{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Photo:        req.Photo,
		RestaurantID: req.RestaurantID,
		Options:      req.Options,
	}
	if err := s.Repo.Create(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

type EditDishReq struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Price       *int64              `json:"price"`
	Photo       *string             `json:"photo"`
	Options     []entity.DishOption `json:"options"`
}

// Edit changes the dish in place. Existing orders are unaffected: they
// carry their own price and selection snapshots.
func (s *DishService) Edit(ownerID, dishID uint, req *EditDishReq) (*entity.Dish, error) {
	dish, err := s.loadOwned(ownerID, dishID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperr.E(apperr.Validation, "Price can't be negative.")
		}
		dish.Price = *req.Price
	}
	if req.Photo != nil {
		dish.Photo = *req.Photo
	}
	if req.Options != nil {
		dish.Options = req.Options
	}

	if err := s.Repo.Save(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) Delete(ownerID, dishID uint) error {
	if _, err := s.loadOwned(ownerID, dishID); err != nil {
		return err
	}
	return s.Repo.Delete(dishID)
}

func (s *DishService) loadOwned(ownerID, dishID uint) (*entity.Dish, error) {
	dish, err := s.Repo.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Dish not found.")
		}
		return nil, err
	}
	owned, err := s.RestRepo.IsOwnedBy(dish.RestaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}
	return dish, nil
}
