// Package service implements the store operations behind the web controllers.
package service

import (
	"strings"

	"echo-journal/database"
	"echo-journal/database/model"

	"gorm.io/gorm"
)

type ArticleService struct{}

func (s *ArticleService) GetAll() ([]*model.Article, error) {
	db := database.GetDB()

	var articles []*model.Article
	err := db.Model(model.Article{}).
		Find(&articles).
		Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetTrending returns every article ordered by view count, most read first.
func (s *ArticleService) GetTrending() ([]*model.Article, error) {
	db := database.GetDB()

	var articles []*model.Article
	err := db.Model(model.Article{}).
		Order("view DESC").
		Find(&articles).
		Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetApproved returns approved articles whose title contains the search term,
// case-insensitively. An empty search term matches every approved article.
func (s *ArticleService) GetApproved(search string) ([]*model.Article, error) {
	db := database.GetDB()

	query := db.Model(model.Article{}).
		Where("status = ?", model.StatusApproved)
	if search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var articles []*model.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *ArticleService) GetPremium() ([]*model.Article, error) {
	db := database.GetDB()

	var articles []*model.Article
	err := db.Model(model.Article{}).
		Where("access = ?", model.AccessPremium).
		Find(&articles).
		Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID returns nil without an error when no article matches.
func (s *ArticleService) GetByID(id int) (*model.Article, error) {
	db := database.GetDB()

	article := &model.Article{}
	err := db.Model(model.Article{}).
		Where("id = ?", id).
		First(article).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return article, nil
}

// GetByAuthor returns the author's articles, or every article when the
// email filter is absent.
func (s *ArticleService) GetByAuthor(email string) ([]*model.Article, error) {
	db := database.GetDB()

	query := db.Model(model.Article{})
	if email != "" {
		query = query.Where("author_email = ?", email)
	}

	var articles []*model.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Add inserts a submission. Review status, paywall tier and view count are
// defaulted here so read-path filters never see a record without them.
func (s *ArticleService) Add(article *model.Article) (int, error) {
	if article.Status == "" {
		article.Status = model.StatusPending
	}
	if article.Access == "" {
		article.Access = model.AccessNormal
	}
	if article.View < 0 {
		article.View = 0
	}

	db := database.GetDB()
	if err := db.Create(article).Error; err != nil {
		return 0, err
	}
	return article.Id, nil
}

// IncrementView adds exactly one to the stored view count. Atomicity comes
// from the store-side expression, not from the handler.
func (s *ArticleService) IncrementView(id int) (int64, error) {
	db := database.GetDB()

	result := db.Model(model.Article{}).
		Where("id = ?", id).
		UpdateColumn("view", gorm.Expr("view + 1"))
	return result.RowsAffected, result.Error
}

func (s *ArticleService) Approve(id int) (int64, error) {
	return s.setFields(id, map[string]any{
		"status": model.StatusApproved,
	})
}

func (s *ArticleService) Decline(id int, declinedText string) (int64, error) {
	return s.setFields(id, map[string]any{
		"status":        model.StatusDeclined,
		"declined_text": declinedText,
	})
}

func (s *ArticleService) MakePremium(id int) (int64, error) {
	return s.setFields(id, map[string]any{
		"access": model.AccessPremium,
	})
}

// Update writes the supplied fields and nothing else.
func (s *ArticleService) Update(id int, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	return s.setFields(id, fields)
}

func (s *ArticleService) Delete(id int) (int64, error) {
	db := database.GetDB()

	result := db.Where("id = ?", id).Delete(&model.Article{})
	return result.RowsAffected, result.Error
}

func (s *ArticleService) setFields(id int, fields map[string]any) (int64, error) {
	db := database.GetDB()

	result := db.Model(model.Article{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}
