package usecases

import (
	"helpdesk-server/cache"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
	"time"
)

type StatsUseCase struct {
	UserRepo         repositories.UserRepository
	KnowledgeRepo    repositories.KnowledgeRepository
	ConversationRepo repositories.ConversationRepository
	Sessions         *cache.SessionCache
}

func NewStatsUseCase(userRepo repositories.UserRepository, knowledgeRepo repositories.KnowledgeRepository, convRepo repositories.ConversationRepository, sessions *cache.SessionCache) *StatsUseCase {
	return &StatsUseCase{
		UserRepo:         userRepo,
		KnowledgeRepo:    knowledgeRepo,
		ConversationRepo: convRepo,
		Sessions:         sessions,
	}
}

// Overview holds the dashboard headline numbers.
type Overview struct {
	Users          int64 `json:"users"`
	Conversations  int64 `json:"conversations"`
	Messages       int64 `json:"messages"`
	KnowledgeSize  int64 `json:"knowledge_entries"`
	FeedbackUp     int64 `json:"feedback_up"`
	FeedbackDown   int64 `json:"feedback_down"`
	ActiveSessions int   `json:"active_sessions"`
}

func (uc *StatsUseCase) GetOverview() (*Overview, error) {
	o := &Overview{ActiveSessions: uc.Sessions.ActiveCount()}
	var err error
	if o.Users, err = uc.UserRepo.Count(); err != nil {
		return nil, err
	}
	if o.Conversations, err = uc.ConversationRepo.Count(); err != nil {
		return nil, err
	}
	if o.Messages, err = uc.ConversationRepo.CountMessages(); err != nil {
		return nil, err
	}
	if o.KnowledgeSize, err = uc.KnowledgeRepo.Count(); err != nil {
		return nil, err
	}
	if o.FeedbackUp, err = uc.ConversationRepo.CountFeedback(entities.FeedbackUp); err != nil {
		return nil, err
	}
	if o.FeedbackDown, err = uc.ConversationRepo.CountFeedback(entities.FeedbackDown); err != nil {
		return nil, err
	}
	return o, nil
}

// DayCount is one bucket of the daily message histogram.
type DayCount struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Messages int    `json:"messages"`
}

// GetDaily buckets messages per calendar day over the trailing window.
// Every day gets a bucket, empty days included, oldest first.
func (uc *StatsUseCase) GetDaily(days int) ([]DayCount, error) {
	if days < 1 {
		days = 7
	}
	start := time.Now().AddDate(0, 0, -(days - 1))
	startOfDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	msgs, err := uc.ConversationRepo.MessagesSince(startOfDay.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int)
	for _, m := range msgs {
		ts, err := time.Parse(time.RFC3339, m.Timestamp)
		if err != nil {
			continue
		}
		buckets[ts.Local().Format("2006-01-02")]++
	}

	out := make([]DayCount, 0, days)
	for i := 0; i < days; i++ {
		day := startOfDay.AddDate(0, 0, i).Format("2006-01-02")
		out = append(out, DayCount{Date: day, Messages: buckets[day]})
	}
	return out, nil
}
