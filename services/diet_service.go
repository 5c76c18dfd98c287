package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/MagicPie0/TopForm-sub000/config"
	"github.com/MagicPie0/TopForm-sub000/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DietService struct{}

func NewDietService() *DietService {
	return &DietService{}
}

type FoodEntry struct {
	Name     string `json:"name"`
	Portion  string `json:"portion"`
	Calories int    `json:"calories"`
}

// DietRequest carries up to four meal slots; absent slots stay nil.
type DietRequest struct {
	Breakfast []FoodEntry `json:"breakfast"`
	Lunch     []FoodEntry `json:"lunch"`
	Diner     []FoodEntry `json:"diner"`
	Dessert   []FoodEntry `json:"dessert"`
}

func (r *DietRequest) Empty() bool {
	return len(r.Breakfast) == 0 && len(r.Lunch) == 0 && len(r.Diner) == 0 && len(r.Dessert) == 0
}

type DietView struct {
	ID        uint        `json:"id"`
	FoodDate  time.Time   `json:"foodDate"`
	Breakfast []FoodEntry `json:"breakfast"`
	Lunch     []FoodEntry `json:"lunch"`
	Diner     []FoodEntry `json:"diner"`
	Dessert   []FoodEntry `json:"dessert"`
}

// SubmitDiet stores each present meal slot as its own JSON column and
// maintains the activity link the same way the workout flow does.
// Both writes commit or roll back together.
func (s *DietService) SubmitDiet(userID uint, req DietRequest) error {
	diet := &models.Diet{
		Breakfast: marshalMeal(req.Breakfast),
		Lunch:     marshalMeal(req.Lunch),
		Diner:     marshalMeal(req.Diner),
		Dessert:   marshalMeal(req.Dessert),
		FoodDate:  utcToday(),
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(diet).Error; err != nil {
			return err
		}
		return s.linkDiet(tx, userID, diet.ID)
	})
	if err != nil {
		return err
	}

	dietSubmissionsTotal.Inc()
	return nil
}

// linkDiet fills the user's open diet slot, or spawns a new activity
// row carrying forward the last known muscle-group id.
func (s *DietService) linkDiet(tx *gorm.DB, userID, dietID uint) error {
	var open models.UserActivity
	err := tx.Where("user_id = ? AND diet_id IS NULL", userID).First(&open).Error
	if err == nil {
		open.DietID = &dietID
		return tx.Save(&open).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var muscleGroupID *uint
	var prev models.UserActivity
	err = tx.Where("user_id = ? AND muscle_group_id IS NOT NULL AND diet_id IS NOT NULL", userID).
		First(&prev).Error
	if err == nil {
		muscleGroupID = prev.MuscleGroupID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Create(&models.UserActivity{
		UserID:        userID,
		MuscleGroupID: muscleGroupID,
		DietID:        &dietID,
	}).Error
}

// GetDietsByDate loads and reshapes every stored diet of the user for
// one calendar day.
func (s *DietService) GetDietsByDate(userID uint, dateStr string) ([]DietView, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var dietIDs []uint
	err = config.DB.Model(&models.UserActivity{}).
		Where("user_id = ? AND diet_id IS NOT NULL", userID).
		Pluck("diet_id", &dietIDs).Error
	if err != nil {
		return nil, err
	}
	if len(dietIDs) == 0 {
		return nil, ErrNoDiets
	}

	var diets []models.Diet
	err = config.DB.
		Where("food_date = ? AND id IN ?", date, dietIDs).
		Find(&diets).Error
	if err != nil {
		return nil, err
	}
	if len(diets) == 0 {
		return nil, ErrNoDietForDate
	}

	views := make([]DietView, 0, len(diets))
	for _, d := range diets {
		views = append(views, DietView{
			ID:        d.ID,
			FoodDate:  d.FoodDate,
			Breakfast: parseMealSlot(d.Breakfast, "breakfast"),
			Lunch:     parseMealSlot(d.Lunch, "lunch"),
			Diner:     parseMealSlot(d.Diner, "diner"),
			Dessert:   parseMealSlot(d.Dessert, "dessert"),
		})
	}
	return views, nil
}

func marshalMeal(items []FoodEntry) *string {
	if len(items) == 0 {
		return nil
	}
	// FoodEntry can always be marshaled
	b, _ := json.Marshal(items)
	s := string(b)
	return &s
}

// parseMealSlot decodes one stored meal column. Absent slots and
// malformed JSON both degrade to no entries for that slot only.
func parseMealSlot(raw *string, slot string) []FoodEntry {
	if raw == nil || *raw == "" {
		return nil
	}
	var items []FoodEntry
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		log.Warnf("Skipping malformed %s slot: %v", slot, err)
		return nil
	}
	return items
}
