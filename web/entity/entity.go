// Package entity defines the request and response types used by the web layer.
package entity

import "echo-journal/database/model"

// InsertResult acknowledges a single-record insert.
type InsertResult struct {
	InsertedId int `json:"insertedId"`
}

// UpdateResult acknowledges a single-record update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a single-record delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// UpsertResult is the outcome of the social-login upsert. A duplicate email
// is a normal no-op: Message is set and InsertedId stays null.
type UpsertResult struct {
	Message    string `json:"message,omitempty"`
	InsertedId any    `json:"insertedId"`
}

// ErrorResponse is the structured error body sent on failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GlobalStats summarizes the whole platform for the dashboard.
type GlobalStats struct {
	Users       int64 `json:"users"`
	NormalUsers int64 `json:"normalUsers"`
	TotalView   int64 `json:"totalView"`
}

// PublisherStats is one row of the per-publisher aggregation.
type PublisherStats struct {
	PublisherName string `json:"publisherName"`
	ArticleCount  int64  `json:"articleCount"`
	TotalViews    int64  `json:"totalViews"`
}

// TokenResponse carries a freshly signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// PaymentIntentResponse carries the client-side handle for completing a charge.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentIntentRequest is the body of a payment-intent creation call.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// DeclineRequest is the body of an article decline call.
type DeclineRequest struct {
	DeclinedText string `json:"declined_text"`
}

// GrantPremiumRequest is the body of a premium grant call.
type GrantPremiumRequest struct {
	PremiumExpireDate string `json:"premiumExpireDate"`
}

// ArticleUpdate is a partial article update. Only the fields present in the
// body are written; everything else on the record is left untouched.
type ArticleUpdate struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Publisher   *string              `json:"publisher"`
	Tags        *model.Tags          `json:"tags"`
	Status      *model.ArticleStatus `json:"status"`
	Date        *string              `json:"date"`
	View        *int64               `json:"view"`
	Access      *model.ArticleAccess `json:"access"`
	Image       *string              `json:"Image"`
}

// Fields flattens the update into a column map for the store call.
func (u *ArticleUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Publisher != nil {
		fields["publisher"] = *u.Publisher
	}
	if u.Tags != nil {
		fields["tags"] = *u.Tags
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.Date != nil {
		fields["date"] = *u.Date
	}
	if u.View != nil {
		fields["view"] = *u.View
	}
	if u.Access != nil {
		fields["access"] = *u.Access
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	return fields
}

// ServerStatus reports process and host health for the admin dashboard.
type ServerStatus struct {
	Cpu float64 `json:"cpu"`
	Mem struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime   uint64 `json:"uptime"`
	Requests int64  `json:"requests"`
	Version  string `json:"version"`
}
