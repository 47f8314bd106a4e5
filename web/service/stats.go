package service

import (
	"echo-journal/database"
	"echo-journal/database/model"
	"echo-journal/web/entity"
)

type StatsService struct{}

// Global returns the platform-wide counters for the dashboard. An empty
// article table yields a total view count of zero, not null.
func (s *StatsService) Global() (*entity.GlobalStats, error) {
	db := database.GetDB()

	stats := &entity.GlobalStats{}

	err := db.Model(model.User{}).Count(&stats.Users).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(model.User{}).
		Where("is_premium = ?", model.PremiumNo).
		Count(&stats.NormalUsers).
		Error
	if err != nil {
		return nil, err
	}

	err = db.Model(model.Article{}).
		Select("COALESCE(SUM(view), 0)").
		Scan(&stats.TotalView).
		Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// PerPublisher groups articles by publisher name, counting articles and
// summing views. Row order is whatever the store produces.
func (s *StatsService) PerPublisher() ([]*entity.PublisherStats, error) {
	db := database.GetDB()

	var stats []*entity.PublisherStats
	err := db.Model(model.Article{}).
		Select("publisher AS publisher_name, COUNT(*) AS article_count, COALESCE(SUM(view), 0) AS total_views").
		Group("publisher").
		Scan(&stats).
		Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
