// Package job contains the scheduled background jobs run by the web server.
package job

import (
	"time"

	"echo-journal/logger"
	"echo-journal/web/service"
)

// PremiumExpiryJob demotes users whose premium subscription has lapsed.
type PremiumExpiryJob struct {
	userService service.UserService
}

func NewPremiumExpiryJob() *PremiumExpiryJob {
	return &PremiumExpiryJob{}
}

func (j *PremiumExpiryJob) Run() {
	users, err := j.userService.GetPremiumUsers()
	if err != nil {
		logger.Warning("Failed to get premium users for expiry check:", err)
		return
	}

	now := time.Now()
	demoted := 0

	for _, user := range users {
		if !j.shouldDemote(now, user.PremiumExpireDate) {
			continue
		}
		if err := j.userService.ClearPremium(user.Email); err != nil {
			logger.Warning("Failed to demote expired premium user", user.Email, ":", err)
			continue
		}
		demoted++
		logger.Infof("Premium expired for user %s", user.Email)
	}

	if demoted > 0 {
		logger.Infof("Premium expiry check completed: %d users demoted", demoted)
	}
}

// shouldDemote reports whether the expire date lies in the past. Dates are
// accepted as RFC 3339 or plain YYYY-MM-DD; anything else is skipped rather
// than demoting on bad data.
func (j *PremiumExpiryJob) shouldDemote(now time.Time, expireDate string) bool {
	if expireDate == "" {
		return false
	}

	expire, err := time.Parse(time.RFC3339, expireDate)
	if err != nil {
		expire, err = time.Parse("2006-01-02", expireDate)
	}
	if err != nil {
		logger.Debugf("Unparsable premium expire date %q, skipping", expireDate)
		return false
	}

	return expire.Before(now)
}
