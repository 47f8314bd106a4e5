package service

import (
	"testing"

	"echo-journal/database/model"
)

func TestGetApprovedFiltersStatusAndTitle(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	seed := []*model.Article{
		{Title: "The Tide Rises", Status: model.StatusApproved},
		{Title: "Tide Tables Explained", Status: model.StatusPending},
		{Title: "Tide Forecasts", Status: model.StatusDeclined},
		{Title: "Harbor News", Status: model.StatusApproved},
	}
	for _, a := range seed {
		if _, err := svc.Add(a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{
			name:     "case-insensitive substring match on approved only",
			search:   "tide",
			expected: []string{"The Tide Rises"},
		},
		{
			name:     "uppercase search term",
			search:   "TIDE",
			expected: []string{"The Tide Rises"},
		},
		{
			name:     "absent search term matches all approved",
			search:   "",
			expected: []string{"The Tide Rises", "Harbor News"},
		},
		{
			name:     "no match",
			search:   "volcano",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, err := svc.GetApproved(tt.search)
			if err != nil {
				t.Fatalf("GetApproved(%q) error: %v", tt.search, err)
			}
			if len(articles) != len(tt.expected) {
				t.Fatalf("GetApproved(%q) returned %d articles, expected %d", tt.search, len(articles), len(tt.expected))
			}
			got := make(map[string]bool, len(articles))
			for _, a := range articles {
				if a.Status != model.StatusApproved {
					t.Errorf("GetApproved(%q) returned article with status %q", tt.search, a.Status)
				}
				got[a.Title] = true
			}
			for _, title := range tt.expected {
				if !got[title] {
					t.Errorf("GetApproved(%q) missing expected title %q", tt.search, title)
				}
			}
		})
	}
}

func TestGetTrendingOrder(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	for _, a := range []*model.Article{
		{Title: "low", View: 3},
		{Title: "high", View: 7},
		{Title: "mid", View: 5},
	} {
		if _, err := svc.Add(a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	articles, err := svc.GetTrending()
	if err != nil {
		t.Fatalf("GetTrending error: %v", err)
	}
	expected := []string{"high", "mid", "low"}
	if len(articles) != len(expected) {
		t.Fatalf("GetTrending returned %d articles, expected %d", len(articles), len(expected))
	}
	for i, title := range expected {
		if articles[i].Title != title {
			t.Errorf("GetTrending[%d] = %q, expected %q", i, articles[i].Title, title)
		}
	}
}

func TestGetPremium(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	for _, a := range []*model.Article{
		{Title: "free", Access: model.AccessNormal},
		{Title: "paid", Access: model.AccessPremium},
	} {
		if _, err := svc.Add(a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	articles, err := svc.GetPremium()
	if err != nil {
		t.Fatalf("GetPremium error: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "paid" {
		t.Fatalf("GetPremium = %+v, expected the single premium article", articles)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	article, err := svc.GetByID(12345)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if article != nil {
		t.Fatalf("GetByID on absent id = %+v, expected nil", article)
	}
}

func TestGetByAuthor(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	for _, a := range []*model.Article{
		{Title: "mine", AuthorEmail: "me@example.com"},
		{Title: "theirs", AuthorEmail: "other@example.com"},
	} {
		if _, err := svc.Add(a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	mine, err := svc.GetByAuthor("me@example.com")
	if err != nil {
		t.Fatalf("GetByAuthor error: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "mine" {
		t.Fatalf("GetByAuthor with email = %+v, expected only the author's article", mine)
	}

	all, err := svc.GetByAuthor("")
	if err != nil {
		t.Fatalf("GetByAuthor error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetByAuthor without email returned %d articles, expected 2", len(all))
	}
}

func TestAddDefaults(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	id, err := svc.Add(&model.Article{Title: "bare submission"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	article, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if article == nil {
		t.Fatal("added article not found")
	}
	if article.Status != model.StatusPending {
		t.Errorf("default status = %q, expected %q", article.Status, model.StatusPending)
	}
	if article.Access != model.AccessNormal {
		t.Errorf("default access = %q, expected %q", article.Access, model.AccessNormal)
	}
	if article.View != 0 {
		t.Errorf("default view = %d, expected 0", article.View)
	}
}

func TestIncrementView(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	id, err := svc.Add(&model.Article{Title: "counted"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	const n = 5
	for i := 0; i < n; i++ {
		matched, err := svc.IncrementView(id)
		if err != nil {
			t.Fatalf("IncrementView error: %v", err)
		}
		if matched != 1 {
			t.Fatalf("IncrementView matched %d rows, expected 1", matched)
		}
	}

	article, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if article.View != n {
		t.Errorf("view after %d increments = %d", n, article.View)
	}

	matched, err := svc.IncrementView(99999)
	if err != nil {
		t.Fatalf("IncrementView on absent id error: %v", err)
	}
	if matched != 0 {
		t.Errorf("IncrementView on absent id matched %d rows, expected 0", matched)
	}
}

func TestUpdatePartial(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	id, err := svc.Add(&model.Article{
		Title:       "Original",
		Description: "original description",
		Publisher:   "Acme",
		Tags:        model.Tags{"news", "local"},
		AuthorEmail: "me@example.com",
		Status:      model.StatusApproved,
		View:        9,
		Date:        "2026-01-15",
	})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	matched, err := svc.Update(id, map[string]any{"title": "New"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if matched != 1 {
		t.Fatalf("Update matched %d rows, expected 1", matched)
	}

	article, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if article.Title != "New" {
		t.Errorf("title = %q, expected %q", article.Title, "New")
	}
	if article.Description != "original description" {
		t.Errorf("description changed: %q", article.Description)
	}
	if article.Publisher != "Acme" {
		t.Errorf("publisher changed: %q", article.Publisher)
	}
	if len(article.Tags) != 2 || article.Tags[0] != "news" {
		t.Errorf("tags changed: %v", article.Tags)
	}
	if article.Status != model.StatusApproved {
		t.Errorf("status changed: %q", article.Status)
	}
	if article.View != 9 {
		t.Errorf("view changed: %d", article.View)
	}
}

func TestDeclineSetsText(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	id, err := svc.Add(&model.Article{Title: "risky"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if _, err := svc.Decline(id, "does not meet guidelines"); err != nil {
		t.Fatalf("Decline error: %v", err)
	}

	article, err := svc.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if article.Status != model.StatusDeclined {
		t.Errorf("status = %q, expected %q", article.Status, model.StatusDeclined)
	}
	if article.DeclinedText != "does not meet guidelines" {
		t.Errorf("declined_text = %q", article.DeclinedText)
	}
	if article.Access != model.AccessNormal {
		t.Errorf("decline changed access axis: %q", article.Access)
	}
}

func TestDelete(t *testing.T) {
	setupTestDB(t)
	svc := ArticleService{}

	id, err := svc.Add(&model.Article{Title: "doomed"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	deleted, err := svc.Delete(id)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("Delete removed %d rows, expected 1", deleted)
	}

	deleted, err = svc.Delete(id)
	if err != nil {
		t.Fatalf("second Delete error: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("second Delete removed %d rows, expected 0", deleted)
	}
}
