package service

import (
	"testing"

	"echo-journal/database/model"
)

func TestGlobalStatsEmptyArticles(t *testing.T) {
	setupTestDB(t)
	userSvc := UserService{}
	statsSvc := StatsService{}

	if _, err := userSvc.Register(&model.User{Email: "a@example.com"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := userSvc.Register(&model.User{Email: "b@example.com"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := userSvc.GrantPremium("b@example.com", "2027-01-01T00:00:00Z"); err != nil {
		t.Fatalf("GrantPremium error: %v", err)
	}

	stats, err := statsSvc.Global()
	if err != nil {
		t.Fatalf("Global error: %v", err)
	}
	if stats.Users != 2 {
		t.Errorf("users = %d, expected 2", stats.Users)
	}
	if stats.NormalUsers != 1 {
		t.Errorf("normalUsers = %d, expected 1", stats.NormalUsers)
	}
	// No articles at all: the aggregate must still come back as zero.
	if stats.TotalView != 0 {
		t.Errorf("totalView = %d, expected 0", stats.TotalView)
	}
}

func TestGlobalStatsSumsViews(t *testing.T) {
	setupTestDB(t)
	articleSvc := ArticleService{}
	statsSvc := StatsService{}

	for _, a := range []*model.Article{
		{Title: "one", View: 4},
		{Title: "two", View: 6},
	} {
		if _, err := articleSvc.Add(a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	stats, err := statsSvc.Global()
	if err != nil {
		t.Fatalf("Global error: %v", err)
	}
	if stats.TotalView != 10 {
		t.Errorf("totalView = %d, expected 10", stats.TotalView)
	}
}

func TestPerPublisherStats(t *testing.T) {
	setupTestDB(t)
	articleSvc := ArticleService{}
	statsSvc := StatsService{}

	for _, a := range []*model.Article{
		{Title: "one", Publisher: "Acme", View: 3},
		{Title: "two", Publisher: "Acme", View: 7},
		{Title: "three", Publisher: "Beta", View: 1},
	} {
		if _, err := articleSvc.Add(a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	stats, err := statsSvc.PerPublisher()
	if err != nil {
		t.Fatalf("PerPublisher error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("PerPublisher returned %d rows, expected 2", len(stats))
	}

	byName := make(map[string]struct {
		count int64
		views int64
	}, len(stats))
	for _, row := range stats {
		byName[row.PublisherName] = struct {
			count int64
			views int64
		}{row.ArticleCount, row.TotalViews}
	}

	acme, ok := byName["Acme"]
	if !ok {
		t.Fatal("missing Acme row")
	}
	if acme.count != 2 || acme.views != 10 {
		t.Errorf("Acme row = %+v, expected {2 10}", acme)
	}
	beta, ok := byName["Beta"]
	if !ok {
		t.Fatal("missing Beta row")
	}
	if beta.count != 1 || beta.views != 1 {
		t.Errorf("Beta row = %+v, expected {1 1}", beta)
	}
}
