package usecase

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

var errStorageDown = errors.New("storage unavailable")

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeWordRepo struct {
	words map[int64]*entity.Word
}

func newFakeWordRepo(ids ...int64) *fakeWordRepo {
	repo := &fakeWordRepo{words: make(map[int64]*entity.Word)}
	for _, id := range ids {
		repo.words[id] = &entity.Word{ID: id, Text: "word"}
	}
	return repo
}

func (r *fakeWordRepo) GetByID(ctx context.Context, id int64) (*entity.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, ok := r.words[id]
	if !ok {
		return nil, entity.ErrWordNotFound
	}
	copy := *w
	return &copy, nil
}

type progressKey struct{ learner, word int64 }

type fakeProgressRepo struct {
	mu     sync.RWMutex
	seq    int64
	items  map[progressKey]*entity.Progress
	failUp error
	counts int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{items: make(map[progressKey]*entity.Progress)}
}

func (r *fakeProgressRepo) Get(ctx context.Context, learnerID, wordID int64) (*entity.Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[progressKey{learnerID, wordID}]
	if !ok {
		return nil, nil
	}
	copy := *item
	return &copy, nil
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, p *entity.Progress) (*entity.Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.failUp != nil {
		return nil, r.failUp
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey{p.LearnerID, p.WordID}
	copy := *p
	if existing, ok := r.items[key]; ok {
		copy.ID = existing.ID
		copy.CreatedAt = existing.CreatedAt
	} else {
		r.seq++
		copy.ID = r.seq
	}
	r.items[key] = &copy
	out := copy
	return &out, nil
}

func (r *fakeProgressRepo) put(p entity.Progress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	r.items[progressKey{p.LearnerID, p.WordID}] = &p
}

func (r *fakeProgressRepo) Count(ctx context.Context, learnerID int64, pred repository.ProgressPredicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts++
	var n int64
	for _, item := range r.items {
		if item.LearnerID != learnerID {
			continue
		}
		if pred.LearnedOnly && !item.Learned {
			continue
		}
		if pred.CreatedSince != nil && item.CreatedAt.Before(*pred.CreatedSince) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *fakeProgressRepo) ListStudyDates(ctx context.Context, learnerID int64, limit int) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []time.Time
	for _, item := range r.items {
		if item.LearnerID == learnerID {
			out = append(out, item.LastStudied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProgressRepo) List(ctx context.Context, query *repository.ListProgressQuery) ([]entity.Progress, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.Progress
	for _, item := range r.items {
		if item.LearnerID != query.LearnerID {
			continue
		}
		if query.DueAt != nil && !item.IsDue(*query.DueAt) {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextReview.Before(out[j].NextReview) })
	return out, int64(len(out)), nil
}

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	seq         int64
	questions   map[int64][]entity.Question
	submissions map[[2]int64]*entity.Submission
	wrong       map[[2]int64]*entity.WrongAnswer
	failCount   error
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		questions:   make(map[int64][]entity.Question),
		submissions: make(map[[2]int64]*entity.Submission),
		wrong:       make(map[[2]int64]*entity.WrongAnswer),
	}
}

func (r *fakeAssignmentRepo) ListQuestions(ctx context.Context, assignmentID int64) ([]entity.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Question(nil), r.questions[assignmentID]...), nil
}

func (r *fakeAssignmentRepo) UpsertSubmission(ctx context.Context, s *entity.Submission) (*entity.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{s.AssignmentID, s.LearnerID}
	copy := *s
	if existing, ok := r.submissions[key]; ok {
		copy.ID = existing.ID
	} else {
		r.seq++
		copy.ID = r.seq
	}
	r.submissions[key] = &copy
	out := copy
	return &out, nil
}

func (r *fakeAssignmentRepo) RecordWrongAnswer(ctx context.Context, w *entity.WrongAnswer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{w.LearnerID, w.QuestionID}
	if existing, ok := r.wrong[key]; ok {
		existing.SubmittedAnswer = w.SubmittedAnswer
		existing.Attempts++
		existing.Mastered = false
		existing.LastAttemptedAt = w.LastAttemptedAt
		return nil
	}
	copy := *w
	copy.Attempts = 1
	r.wrong[key] = &copy
	return nil
}

func (r *fakeAssignmentRepo) ListWrongAnswers(ctx context.Context, learnerID int64, includeMastered bool) ([]entity.WrongAnswer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.WrongAnswer{}
	for _, w := range r.wrong {
		if w.LearnerID == learnerID && (includeMastered || !w.Mastered) {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (r *fakeAssignmentRepo) CountSubmissions(ctx context.Context, learnerID int64, perfectOnly bool) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if r.failCount != nil {
		return 0, r.failCount
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.submissions {
		if s.LearnerID != learnerID {
			continue
		}
		if perfectOnly && !s.Perfect() {
			continue
		}
		n++
	}
	return n, nil
}

type fakeAchievementRepo struct {
	mu      sync.Mutex
	seq     int64
	catalog []entity.Achievement
	grants  map[[2]int64]*entity.UserAchievement
	writes  int
	clock   func() time.Time
}

func newFakeAchievementRepo(catalog ...entity.Achievement) *fakeAchievementRepo {
	return &fakeAchievementRepo{
		catalog: catalog,
		grants:  make(map[[2]int64]*entity.UserAchievement),
		clock:   time.Now,
	}
}

func (r *fakeAchievementRepo) ListUngranted(ctx context.Context, learnerID int64) ([]entity.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Achievement
	for _, a := range r.catalog {
		if _, ok := r.grants[[2]int64{learnerID, a.ID}]; !ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAchievementRepo) Grant(ctx context.Context, learnerID, achievementID, value int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{learnerID, achievementID}
	if _, ok := r.grants[key]; ok {
		return false, nil
	}
	r.seq++
	r.writes++
	r.grants[key] = &entity.UserAchievement{
		ID:            r.seq,
		LearnerID:     learnerID,
		AchievementID: achievementID,
		ProgressValue: value,
		EarnedAt:      r.clock(),
	}
	return true, nil
}

func (r *fakeAchievementRepo) ListGranted(ctx context.Context, learnerID int64) ([]entity.UserAchievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.UserAchievement
	for _, g := range r.grants {
		if g.LearnerID == learnerID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAchievementRepo) UpsertDefinition(ctx context.Context, a *entity.Achievement) (*entity.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *a
	r.catalog = append(r.catalog, copy)
	return &copy, nil
}

type fakeAppUnlockRepo struct {
	mu    sync.Mutex
	items map[[2]int64]*entity.AppUnlock
}

func newFakeAppUnlockRepo() *fakeAppUnlockRepo {
	return &fakeAppUnlockRepo{items: make(map[[2]int64]*entity.AppUnlock)}
}

func (r *fakeAppUnlockRepo) Upsert(ctx context.Context, u *entity.AppUnlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *u
	r.items[[2]int64{u.LearnerID, u.RewardID}] = &copy
	return nil
}

func (r *fakeAppUnlockRepo) Get(ctx context.Context, learnerID, rewardID int64) (*entity.AppUnlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[[2]int64{learnerID, rewardID}]
	if !ok {
		return nil, nil
	}
	copy := *item
	return &copy, nil
}
