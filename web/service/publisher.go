package service

import (
	"echo-journal/database"
	"echo-journal/database/model"
)

type PublisherService struct{}

func (s *PublisherService) GetAll() ([]*model.Publisher, error) {
	db := database.GetDB()

	var publishers []*model.Publisher
	err := db.Model(model.Publisher{}).
		Find(&publishers).
		Error
	if err != nil {
		return nil, err
	}
	return publishers, nil
}

func (s *PublisherService) Add(publisher *model.Publisher) (int, error) {
	db := database.GetDB()

	if err := db.Create(publisher).Error; err != nil {
		return 0, err
	}
	return publisher.Id, nil
}
