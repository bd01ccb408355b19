package connectrpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/eslsoft/learnpath/internal/adapter/mapping"
	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
	"github.com/eslsoft/learnpath/internal/usecase"
)

// LearningServiceName is the fully-qualified name of the learning service.
const LearningServiceName = "learnpath.v1.LearningService"

const (
	StudyWordProcedure         = "/" + LearningServiceName + "/StudyWord"
	GradeSubmissionProcedure   = "/" + LearningServiceName + "/GradeSubmission"
	CheckAchievementsProcedure = "/" + LearningServiceName + "/CheckAchievements"
	ListAchievementsProcedure  = "/" + LearningServiceName + "/ListAchievements"
	RewardStatusProcedure      = "/" + LearningServiceName + "/RewardStatus"
	ListDueWordsProcedure      = "/" + LearningServiceName + "/ListDueWords"
	ListWrongAnswersProcedure  = "/" + LearningServiceName + "/ListWrongAnswers"
)

type LearningServiceServer struct {
	study        usecase.StudyUsecase
	grading      usecase.GradingUsecase
	achievements usecase.AchievementUsecase
	rewards      usecase.RewardUsecase
}

func NewLearningServiceServer(
	study usecase.StudyUsecase,
	grading usecase.GradingUsecase,
	achievements usecase.AchievementUsecase,
	rewards usecase.RewardUsecase,
) *LearningServiceServer {
	return &LearningServiceServer{
		study:        study,
		grading:      grading,
		achievements: achievements,
		rewards:      rewards,
	}
}

// RegisterHandlers mounts every learning procedure on mux. The JSON codec is
// always installed; callers add interceptors through opts.
func (s *LearningServiceServer) RegisterHandlers(mux *http.ServeMux, opts ...connect.HandlerOption) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	handlers := []struct {
		path    string
		handler http.Handler
	}{
		{StudyWordProcedure, connect.NewUnaryHandler(StudyWordProcedure, s.StudyWord, opts...)},
		{GradeSubmissionProcedure, connect.NewUnaryHandler(GradeSubmissionProcedure, s.GradeSubmission, opts...)},
		{CheckAchievementsProcedure, connect.NewUnaryHandler(CheckAchievementsProcedure, s.CheckAchievements, opts...)},
		{ListAchievementsProcedure, connect.NewUnaryHandler(ListAchievementsProcedure, s.ListAchievements, opts...)},
		{RewardStatusProcedure, connect.NewUnaryHandler(RewardStatusProcedure, s.RewardStatus, opts...)},
		{ListDueWordsProcedure, connect.NewUnaryHandler(ListDueWordsProcedure, s.ListDueWords, opts...)},
		{ListWrongAnswersProcedure, connect.NewUnaryHandler(ListWrongAnswersProcedure, s.ListWrongAnswers, opts...)},
	}
	for _, h := range handlers {
		mux.Handle(h.path, h.handler)
	}
}

func (s *LearningServiceServer) StudyWord(ctx context.Context, req *connect.Request[StudyWordRequest]) (*connect.Response[StudyWordResponse], error) {
	msg := req.Msg
	result, err := s.study.StudyWord(ctx, msg.LearnerID, msg.WordID, msg.Correct)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	return connect.NewResponse(&StudyWordResponse{
		Progress:        toProgress(*result.Progress),
		NewAchievements: toAchievements(result.NewAchievements),
	}), nil
}

func (s *LearningServiceServer) GradeSubmission(ctx context.Context, req *connect.Request[GradeSubmissionRequest]) (*connect.Response[GradeSubmissionResponse], error) {
	msg := req.Msg
	result, err := s.grading.GradeSubmission(ctx, msg.AssignmentID, msg.LearnerID, msg.Answers)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	return connect.NewResponse(&GradeSubmissionResponse{
		SubmissionID:    result.Submission.ID,
		Score:           result.Submission.Score,
		MaxScore:        result.Submission.MaxScore,
		Percentage:      result.Percentage,
		WrongAnswers:    toWrongAnswers(result.WrongAnswers),
		NewAchievements: toAchievements(result.NewAchievements),
	}), nil
}

func (s *LearningServiceServer) CheckAchievements(ctx context.Context, req *connect.Request[LearnerRequest]) (*connect.Response[CheckAchievementsResponse], error) {
	granted, err := s.achievements.CheckAndUnlock(ctx, req.Msg.LearnerID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&CheckAchievementsResponse{NewAchievements: toAchievements(granted)}), nil
}

func (s *LearningServiceServer) ListAchievements(ctx context.Context, req *connect.Request[LearnerRequest]) (*connect.Response[ListAchievementsResponse], error) {
	items, err := s.achievements.ListGranted(ctx, req.Msg.LearnerID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&ListAchievementsResponse{
		Achievements: lo.Map(items, func(ua entity.UserAchievement, _ int) UserAchievement { return toUserAchievement(ua) }),
	}), nil
}

func (s *LearningServiceServer) RewardStatus(ctx context.Context, req *connect.Request[RewardStatusRequest]) (*connect.Response[RewardStatusResponse], error) {
	status, err := s.rewards.Status(ctx, req.Msg.LearnerID, req.Msg.RewardID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&RewardStatusResponse{
		RewardID:  status.RewardID,
		Unlocked:  status.Unlocked,
		Active:    status.Active,
		ExpiresAt: formatTimePtr(status.ExpiresAt),
	}), nil
}

func (s *LearningServiceServer) ListDueWords(ctx context.Context, req *connect.Request[ListDueWordsRequest]) (*connect.Response[ListDueWordsResponse], error) {
	msg := req.Msg
	query := &repository.ListProgressQuery{
		Pagination: convertPagination(msg.Pagination),
		FilterOrder: repository.FilterOrder{
			Filter:  msg.Filter,
			OrderBy: msg.OrderBy,
		},
		LearnerID: msg.LearnerID,
	}
	items, total, err := s.study.ListDueWords(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}

	return connect.NewResponse(&ListDueWordsResponse{
		Items: lo.Map(items, func(p entity.Progress, _ int) Progress { return toProgress(p) }),
		Total: total,
	}), nil
}

func (s *LearningServiceServer) ListWrongAnswers(ctx context.Context, req *connect.Request[ListWrongAnswersRequest]) (*connect.Response[ListWrongAnswersResponse], error) {
	items, err := s.grading.ListWrongAnswers(ctx, req.Msg.LearnerID, req.Msg.IncludeMastered)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&ListWrongAnswersResponse{Items: toWrongAnswers(items)}), nil
}
