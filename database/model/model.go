package model

import (
	"database/sql/driver"
	"errors"

	"github.com/goccy/go-json"
)

type ArticleStatus string

const (
	StatusPending  ArticleStatus = "Pending"
	StatusApproved ArticleStatus = "Approved"
	StatusDeclined ArticleStatus = "Declined"
)

type ArticleAccess string

const (
	AccessNormal  ArticleAccess = "normal"
	AccessPremium ArticleAccess = "premium"
)

type UserRole string

const (
	RoleNormal UserRole = "normal"
	RoleAdmin  UserRole = "admin"
)

// Premium flags are stored as text, matching what the frontend submits.
const (
	PremiumYes = "yes"
	PremiumNo  = "no"
)

// Tags is a list of article tags persisted as a JSON-encoded TEXT column.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *Tags) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("tags: unsupported column type")
	}
	if len(data) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(data, t)
}

// Article is a submitted piece of writing. Status (editorial review) and
// Access (paywall tier) are independent axes.
type Article struct {
	Id           int           `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Publisher    string        `json:"publisher"`
	Tags         Tags          `json:"tags" gorm:"type:text"`
	AuthorEmail  string        `json:"author_email"`
	Status       ArticleStatus `json:"status" gorm:"default:Pending"`
	DeclinedText string        `json:"declined_text,omitempty"`
	Access       ArticleAccess `json:"access" gorm:"default:normal"`
	View         int64         `json:"view" gorm:"default:0"`
	Date         string        `json:"date"`
	Image        string        `json:"Image"`
}

type Publisher struct {
	Id   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type User struct {
	Id                int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email             string   `json:"email" gorm:"uniqueIndex"`
	Name              string   `json:"name"`
	Photo             string   `json:"photo"`
	Role              UserRole `json:"role" gorm:"default:normal"`
	IsPremium         string   `json:"isPremium" gorm:"default:no"`
	PremiumExpireDate string   `json:"premiumExpireDate,omitempty"`
}
