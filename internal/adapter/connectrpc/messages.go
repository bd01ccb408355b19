package connectrpc

import (
	"github.com/samber/lo"

	"github.com/eslsoft/learnpath/internal/entity"
)

type StudyWordRequest struct {
	LearnerID int64 `json:"learner_id"`
	WordID    int64 `json:"word_id"`
	Correct   bool  `json:"correct"`
}

type StudyWordResponse struct {
	Progress        Progress      `json:"progress"`
	NewAchievements []Achievement `json:"new_achievements"`
}

type GradeSubmissionRequest struct {
	AssignmentID int64           `json:"assignment_id"`
	LearnerID    int64           `json:"learner_id"`
	Answers      []entity.Answer `json:"answers"`
}

type GradeSubmissionResponse struct {
	SubmissionID    int64         `json:"submission_id"`
	Score           int           `json:"score"`
	MaxScore        int           `json:"max_score"`
	Percentage      int           `json:"percentage"`
	WrongAnswers    []WrongAnswer `json:"wrong_answers"`
	NewAchievements []Achievement `json:"new_achievements"`
}

type LearnerRequest struct {
	LearnerID int64 `json:"learner_id"`
}

type CheckAchievementsResponse struct {
	NewAchievements []Achievement `json:"new_achievements"`
}

type ListAchievementsResponse struct {
	Achievements []UserAchievement `json:"achievements"`
}

type RewardStatusRequest struct {
	LearnerID int64 `json:"learner_id"`
	RewardID  int64 `json:"reward_id"`
}

type RewardStatusResponse struct {
	RewardID  int64   `json:"reward_id"`
	Unlocked  bool    `json:"unlocked"`
	Active    bool    `json:"active"`
	ExpiresAt *string `json:"expires_at,omitempty"`
}

type ListDueWordsRequest struct {
	LearnerID  int64              `json:"learner_id"`
	Filter     string             `json:"filter"`
	OrderBy    string             `json:"order_by"`
	Pagination *PaginationRequest `json:"pagination,omitempty"`
}

type ListDueWordsResponse struct {
	Items []Progress `json:"items"`
	Total int64      `json:"total"`
}

type ListWrongAnswersRequest struct {
	LearnerID       int64 `json:"learner_id"`
	IncludeMastered bool  `json:"include_mastered"`
}

type ListWrongAnswersResponse struct {
	Items []WrongAnswer `json:"items"`
}

type Progress struct {
	WordID        int64  `json:"word_id"`
	LearningLevel int    `json:"learning_level"`
	Learned       bool   `json:"learned"`
	LastStudied   string `json:"last_studied"`
	NextReview    string `json:"next_review"`
}

type Achievement struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Icon             string `json:"icon,omitempty"`
	RequirementType  string `json:"requirement_type"`
	RequirementValue int64  `json:"requirement_value"`
	RewardType       string `json:"reward_type"`
	RewardValue      string `json:"reward_value,omitempty"`
}

type UserAchievement struct {
	Achievement   Achievement `json:"achievement"`
	ProgressValue int64       `json:"progress_value"`
	EarnedAt      string      `json:"earned_at"`
}

type WrongAnswer struct {
	QuestionID      int64  `json:"question_id"`
	SubmittedAnswer string `json:"submitted_answer"`
	CorrectAnswer   string `json:"correct_answer"`
	Attempts        int    `json:"attempts"`
	Mastered        bool   `json:"mastered"`
	LastAttemptedAt string `json:"last_attempted_at"`
}

func toProgress(p entity.Progress) Progress {
	return Progress{
		WordID:        p.WordID,
		LearningLevel: p.LearningLevel,
		Learned:       p.Learned,
		LastStudied:   formatTime(p.LastStudied),
		NextReview:    formatTime(p.NextReview),
	}
}

func toAchievement(a entity.Achievement) Achievement {
	return Achievement{
		ID:               a.ID,
		Name:             a.Name,
		Description:      a.Description,
		Icon:             a.Icon,
		RequirementType:  string(a.RequirementType),
		RequirementValue: a.RequirementValue,
		RewardType:       string(a.RewardType),
		RewardValue:      a.RewardValue,
	}
}

func toAchievements(items []entity.Achievement) []Achievement {
	return lo.Map(items, func(a entity.Achievement, _ int) Achievement { return toAchievement(a) })
}

func toUserAchievement(ua entity.UserAchievement) UserAchievement {
	out := UserAchievement{
		Achievement:   Achievement{ID: ua.AchievementID},
		ProgressValue: ua.ProgressValue,
		EarnedAt:      formatTime(ua.EarnedAt),
	}
	if ua.Achievement != nil {
		out.Achievement = toAchievement(*ua.Achievement)
	}
	return out
}

func toWrongAnswers(items []entity.WrongAnswer) []WrongAnswer {
	return lo.Map(items, func(w entity.WrongAnswer, _ int) WrongAnswer {
		return WrongAnswer{
			QuestionID:      w.QuestionID,
			SubmittedAnswer: w.SubmittedAnswer,
			CorrectAnswer:   w.CorrectAnswer,
			Attempts:        w.Attempts,
			Mastered:        w.Mastered,
			LastAttemptedAt: formatTime(w.LastAttemptedAt),
		}
	})
}

func (r *StudyWordRequest) GetLearnerID() int64        { return r.LearnerID }
func (r *GradeSubmissionRequest) GetLearnerID() int64  { return r.LearnerID }
func (r *LearnerRequest) GetLearnerID() int64          { return r.LearnerID }
func (r *RewardStatusRequest) GetLearnerID() int64     { return r.LearnerID }
func (r *ListDueWordsRequest) GetLearnerID() int64     { return r.LearnerID }
func (r *ListWrongAnswersRequest) GetLearnerID() int64 { return r.LearnerID }
