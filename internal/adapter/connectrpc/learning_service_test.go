package connectrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
	"github.com/eslsoft/learnpath/internal/usecase"
)

var testNow = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

type stubStudy struct {
	lastQuery *repository.ListProgressQuery
}

func (s *stubStudy) StudyWord(_ context.Context, learnerID, wordID int64, correct bool) (*usecase.StudyResult, error) {
	if learnerID <= 0 {
		return nil, entity.ErrInvalidLearnerID
	}
	if wordID == 404 {
		return nil, entity.ErrWordNotFound
	}
	return &usecase.StudyResult{
		Progress: &entity.Progress{
			LearnerID: learnerID, WordID: wordID, LearningLevel: 1,
			LastStudied: testNow, NextReview: testNow.AddDate(0, 0, 3),
		},
		NewAchievements: []entity.Achievement{{ID: 1, Name: "First Steps", RequirementType: entity.RequirementWordsLearned, RequirementValue: 1, RewardType: entity.RewardAppUnlock, RewardValue: "1"}},
	}, nil
}

func (s *stubStudy) ListDueWords(_ context.Context, query *repository.ListProgressQuery) ([]entity.Progress, int64, error) {
	s.lastQuery = query
	if strings.Contains(query.Filter, "||") {
		return nil, 0, entity.ErrInvalidListQuery
	}
	return []entity.Progress{{WordID: 3, LearningLevel: 2, NextReview: testNow}}, 1, nil
}

type stubGrading struct{}

func (stubGrading) GradeSubmission(_ context.Context, assignmentID, learnerID int64, answers []entity.Answer) (*usecase.GradeResult, error) {
	return &usecase.GradeResult{
		Submission: &entity.Submission{ID: 8, AssignmentID: assignmentID, LearnerID: learnerID, Answers: answers, Score: 1, MaxScore: 2},
		Percentage: 50,
		WrongAnswers: []entity.WrongAnswer{
			{QuestionID: 2, SubmittedAnswer: "4", CorrectAnswer: "5", Attempts: 1, LastAttemptedAt: testNow},
		},
		NewAchievements: []entity.Achievement{},
	}, nil
}

func (stubGrading) ListWrongAnswers(_ context.Context, learnerID int64, includeMastered bool) ([]entity.WrongAnswer, error) {
	return []entity.WrongAnswer{{QuestionID: 2, Attempts: 3, Mastered: includeMastered}}, nil
}

type stubAchievements struct{}

func (stubAchievements) CheckAndUnlock(context.Context, int64) ([]entity.Achievement, error) {
	return nil, entity.ErrStorageUnavailable
}

func (stubAchievements) ListGranted(_ context.Context, learnerID int64) ([]entity.UserAchievement, error) {
	return []entity.UserAchievement{{
		LearnerID: learnerID, AchievementID: 1, ProgressValue: 1, EarnedAt: testNow,
		Achievement: &entity.Achievement{ID: 1, Name: "First Steps"},
	}}, nil
}

type stubRewards struct{}

func (stubRewards) Unlock(context.Context, int64, int64, int) (*entity.AppUnlock, error) {
	return nil, nil
}

func (stubRewards) Status(_ context.Context, learnerID, rewardID int64) (*entity.RewardStatus, error) {
	expires := testNow.Add(30 * time.Minute)
	return &entity.RewardStatus{RewardID: rewardID, Unlocked: true, Active: true, ExpiresAt: &expires}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *stubStudy) {
	t.Helper()
	study := &stubStudy{}
	svc := NewLearningServiceServer(study, stubGrading{}, stubAchievements{}, stubRewards{})
	mux := http.NewServeMux()
	svc.RegisterHandlers(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, study
}

func call(t *testing.T, srv *httptest.Server, procedure, body string, out any) int {
	t.Helper()
	resp, err := http.Post(srv.URL+procedure, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", procedure, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response: %v", procedure, err)
		}
	}
	return resp.StatusCode
}

func TestStudyWordProcedure(t *testing.T) {
	srv, _ := newTestServer(t)

	var out StudyWordResponse
	code := call(t, srv, StudyWordProcedure, `{"learner_id":7,"word_id":3,"correct":true}`, &out)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.Progress.WordID != 3 || out.Progress.LearningLevel != 1 || out.Progress.NextReview != "2024-09-04T10:00:00Z" {
		t.Fatalf("unexpected progress: %+v", out.Progress)
	}
	if len(out.NewAchievements) != 1 || out.NewAchievements[0].Name != "First Steps" {
		t.Fatalf("unexpected achievements: %+v", out.NewAchievements)
	}
}

func TestStudyWordProcedureErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	var errBody struct {
		Code string `json:"code"`
	}
	if code := call(t, srv, StudyWordProcedure, `{"learner_id":0,"word_id":3}`, &errBody); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if errBody.Code != "invalid_argument" {
		t.Fatalf("expected invalid_argument, got %q", errBody.Code)
	}
	if code := call(t, srv, StudyWordProcedure, `{"learner_id":1,"word_id":404}`, &errBody); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if code := call(t, srv, CheckAchievementsProcedure, `{"learner_id":1}`, &errBody); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	if errBody.Code != "unavailable" {
		t.Fatalf("expected unavailable, got %q", errBody.Code)
	}
}

func TestGradeSubmissionProcedure(t *testing.T) {
	srv, _ := newTestServer(t)

	var out GradeSubmissionResponse
	body := `{"assignment_id":5,"learner_id":7,"answers":[{"question_id":1,"value":"B"},{"question_id":2,"value":"4"}]}`
	if code := call(t, srv, GradeSubmissionProcedure, body, &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.SubmissionID != 8 || out.Score != 1 || out.MaxScore != 2 || out.Percentage != 50 {
		t.Fatalf("unexpected grade: %+v", out)
	}
	if len(out.WrongAnswers) != 1 || out.WrongAnswers[0].CorrectAnswer != "5" {
		t.Fatalf("unexpected wrong answers: %+v", out.WrongAnswers)
	}
	if out.NewAchievements == nil {
		t.Fatal("new_achievements must encode as an empty list")
	}
}

func TestListDueWordsProcedure(t *testing.T) {
	srv, study := newTestServer(t)

	var out ListDueWordsResponse
	body := `{"learner_id":7,"filter":"learned == false","order_by":"level desc","pagination":{"page_no":2,"page_size":50000}}`
	if code := call(t, srv, ListDueWordsProcedure, body, &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.Total != 1 || len(out.Items) != 1 || out.Items[0].WordID != 3 {
		t.Fatalf("unexpected due words: %+v", out)
	}
	q := study.lastQuery
	if q.LearnerID != 7 || q.Filter != "learned == false" || q.OrderBy != "level desc" {
		t.Fatalf("query not forwarded: %+v", q)
	}
	if q.PageNo != 2 || q.PageSize != _maxPageSize {
		t.Fatalf("expected clamped pagination, got %+v", q.Pagination)
	}

	if code := call(t, srv, ListDueWordsProcedure, `{"learner_id":7,"filter":"learned == true || level >= 1"}`, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rejected filter, got %d", code)
	}
}

func TestRewardAndAchievementProcedures(t *testing.T) {
	srv, _ := newTestServer(t)

	var status RewardStatusResponse
	if code := call(t, srv, RewardStatusProcedure, `{"learner_id":7,"reward_id":1}`, &status); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !status.Unlocked || !status.Active || status.ExpiresAt == nil || *status.ExpiresAt != "2024-09-01T10:30:00Z" {
		t.Fatalf("unexpected reward status: %+v", status)
	}

	var granted ListAchievementsResponse
	if code := call(t, srv, ListAchievementsProcedure, `{"learner_id":7}`, &granted); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(granted.Achievements) != 1 || granted.Achievements[0].Achievement.Name != "First Steps" {
		t.Fatalf("unexpected achievements: %+v", granted)
	}

	var wrong ListWrongAnswersResponse
	if code := call(t, srv, ListWrongAnswersProcedure, `{"learner_id":7,"include_mastered":true}`, &wrong); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(wrong.Items) != 1 || !wrong.Items[0].Mastered {
		t.Fatalf("unexpected wrong answers: %+v", wrong)
	}
}
