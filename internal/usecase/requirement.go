package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/learnpath/internal/entity"
	"github.com/eslsoft/learnpath/internal/repository"
)

// RequirementFunc measures one requirement for a learner and reports whether threshold is reached.
// value is the measured quantity stored with the grant.
type RequirementFunc func(ctx context.Context, facts *LearnerFacts, threshold int64) (met bool, value int64, err error)

// RequirementRegistry maps requirement types to their evaluators.
type RequirementRegistry struct {
	mu    sync.RWMutex
	funcs map[entity.RequirementType]RequirementFunc
}

// NewRequirementRegistry returns a registry with the built-in requirement types.
func NewRequirementRegistry() *RequirementRegistry {
	r := &RequirementRegistry{funcs: make(map[entity.RequirementType]RequirementFunc)}
	r.Register(entity.RequirementWordsLearned, countAtLeast((*LearnerFacts).LearnedWords))
	r.Register(entity.RequirementAssignmentsCompleted, countAtLeast((*LearnerFacts).Submissions))
	r.Register(entity.RequirementPerfectScores, countAtLeast((*LearnerFacts).PerfectScores))
	r.Register(entity.RequirementWordsPerDay, countAtLeast((*LearnerFacts).WordsStartedToday))
	r.Register(entity.RequirementDailyStreak, dailyStreak)
	return r
}

// Register adds or replaces the evaluator for t.
func (r *RequirementRegistry) Register(t entity.RequirementType, fn RequirementFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[t] = fn
}

// Lookup returns the evaluator for t.
func (r *RequirementRegistry) Lookup(t entity.RequirementType) (RequirementFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[t]
	return fn, ok
}

// Types lists the registered requirement types.
func (r *RequirementRegistry) Types() []entity.RequirementType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.funcs)
}

func countAtLeast(count func(*LearnerFacts, context.Context) (int64, error)) RequirementFunc {
	return func(ctx context.Context, facts *LearnerFacts, threshold int64) (bool, int64, error) {
		n, err := count(facts, ctx)
		if err != nil {
			return false, 0, err
		}
		return n >= threshold, n, nil
	}
}

// dailyStreak takes the distinct days of the learner's most recent threshold
// study rows and counts those inside the trailing threshold-day window, today
// included. It does not require the days to be consecutive.
func dailyStreak(ctx context.Context, facts *LearnerFacts, threshold int64) (bool, int64, error) {
	if threshold <= 0 {
		return true, 0, nil
	}
	days, err := facts.StudyDays(ctx, int(threshold))
	if err != nil {
		return false, 0, err
	}
	today := entity.StartOfDay(facts.now)
	inWindow := lo.CountBy(days, func(day time.Time) bool {
		ago := entity.DaysBetween(day, today)
		return ago >= 0 && ago < int(threshold)
	})
	n := int64(inWindow)
	return n >= threshold, n, nil
}

// LearnerFacts lazily loads aggregate counts for one learner. Each count is
// fetched at most once per instance and is safe for concurrent use.
type LearnerFacts struct {
	learnerID   int64
	now         time.Time
	progress    repository.ProgressRepository
	assignments repository.AssignmentRepository

	learned lazyCount
	subs    lazyCount
	perfect lazyCount
	started lazyCount
}

// NewLearnerFacts binds the fact loaders to a learner at a fixed instant.
func NewLearnerFacts(learnerID int64, now time.Time, progress repository.ProgressRepository, assignments repository.AssignmentRepository) *LearnerFacts {
	return &LearnerFacts{
		learnerID:   learnerID,
		now:         now,
		progress:    progress,
		assignments: assignments,
	}
}

// LearnedWords counts progress rows flagged learned.
func (f *LearnerFacts) LearnedWords(ctx context.Context) (int64, error) {
	return f.learned.get(func() (int64, error) {
		return f.progress.Count(ctx, f.learnerID, repository.ProgressPredicate{LearnedOnly: true})
	})
}

// Submissions counts graded assignments.
func (f *LearnerFacts) Submissions(ctx context.Context) (int64, error) {
	return f.subs.get(func() (int64, error) {
		return f.assignments.CountSubmissions(ctx, f.learnerID, false)
	})
}

// PerfectScores counts submissions that earned every point.
func (f *LearnerFacts) PerfectScores(ctx context.Context) (int64, error) {
	return f.perfect.get(func() (int64, error) {
		return f.assignments.CountSubmissions(ctx, f.learnerID, true)
	})
}

// WordsStartedToday counts words whose progress row was created today.
func (f *LearnerFacts) WordsStartedToday(ctx context.Context) (int64, error) {
	return f.started.get(func() (int64, error) {
		since := entity.StartOfDay(f.now)
		return f.progress.Count(ctx, f.learnerID, repository.ProgressPredicate{CreatedSince: &since})
	})
}

// StudyDays returns the distinct calendar days of the learner's most recent
// rows study rows, newest first.
func (f *LearnerFacts) StudyDays(ctx context.Context, rows int) ([]time.Time, error) {
	stamps, err := f.progress.ListStudyDates(ctx, f.learnerID, rows)
	if err != nil {
		return nil, fmt.Errorf("list study dates: %w", err)
	}
	loc := f.now.Location()
	return lo.Uniq(lo.Map(stamps, func(ts time.Time, _ int) time.Time {
		return entity.StartOfDay(ts.In(loc))
	})), nil
}

type lazyCount struct {
	once  sync.Once
	value int64
	err   error
}

func (l *lazyCount) get(load func() (int64, error)) (int64, error) {
	l.once.Do(func() {
		l.value, l.err = load()
	})
	return l.value, l.err
}
