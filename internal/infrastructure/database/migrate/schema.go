package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const textSize = 2147483647

var (
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "text", Type: field.TypeString},
		{Name: "meaning", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "example", Type: field.TypeString, Size: textSize, Nullable: true},
		{Name: "difficulty_level", Type: field.TypeInt, Default: 1},
		{Name: "grade_level", Type: field.TypeInt, Default: 0},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "words_text", Unique: false, Columns: []*schema.Column{WordsColumns[1]}},
		},
	}
	// LearnerProgressColumns holds the columns for the "learner_progress" table.
	LearnerProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "learner_id", Type: field.TypeInt64},
		{Name: "learning_level", Type: field.TypeInt, Default: 0},
		{Name: "learned", Type: field.TypeBool, Default: false},
		{Name: "last_studied", Type: field.TypeTime},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "word_id", Type: field.TypeInt64},
	}
	// LearnerProgressTable holds the schema information for the "learner_progress" table.
	LearnerProgressTable = &schema.Table{
		Name:       "learner_progress",
		Columns:    LearnerProgressColumns,
		PrimaryKey: []*schema.Column{LearnerProgressColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "learner_progress_words_progress",
				Columns:    []*schema.Column{LearnerProgressColumns[8]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "learnerprogress_learner_id_word_id", Unique: true, Columns: []*schema.Column{LearnerProgressColumns[1], LearnerProgressColumns[8]}},
			{Name: "learnerprogress_learner_id_next_review", Unique: false, Columns: []*schema.Column{LearnerProgressColumns[1], LearnerProgressColumns[5]}},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "assignment_id", Type: field.TypeInt64},
		{Name: "question_type", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Size: textSize},
		{Name: "options", Type: field.TypeString, Size: textSize, Nullable: true},
		{Name: "points", Type: field.TypeInt, Default: 1},
		{Name: "tolerance", Type: field.TypeFloat64, Nullable: true},
		{Name: "case_sensitive", Type: field.TypeBool, Default: false},
		{Name: "exact_match", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "questions_assignment_id_position", Unique: false, Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[10]}},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "assignment_id", Type: field.TypeInt64},
		{Name: "learner_id", Type: field.TypeInt64},
		{Name: "answers", Type: field.TypeString, Size: textSize},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "max_score", Type: field.TypeInt, Default: 0},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "submissions_assignment_id_learner_id", Unique: true, Columns: []*schema.Column{SubmissionsColumns[1], SubmissionsColumns[2]}},
			{Name: "submissions_learner_id", Unique: false, Columns: []*schema.Column{SubmissionsColumns[2]}},
		},
	}
	// WrongAnswersColumns holds the columns for the "wrong_answers" table.
	WrongAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "learner_id", Type: field.TypeInt64},
		{Name: "submitted_answer", Type: field.TypeString, Size: textSize},
		{Name: "correct_answer", Type: field.TypeString, Size: textSize},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "mastered", Type: field.TypeBool, Default: false},
		{Name: "last_attempted_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeInt64},
	}
	// WrongAnswersTable holds the schema information for the "wrong_answers" table.
	WrongAnswersTable = &schema.Table{
		Name:       "wrong_answers",
		Columns:    WrongAnswersColumns,
		PrimaryKey: []*schema.Column{WrongAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "wrong_answers_questions_wrong_answers",
				Columns:    []*schema.Column{WrongAnswersColumns[7]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "wronganswers_learner_id_question_id", Unique: true, Columns: []*schema.Column{WrongAnswersColumns[1], WrongAnswersColumns[7]}},
		},
	}
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "requirement_type", Type: field.TypeString},
		{Name: "requirement_value", Type: field.TypeInt64, Default: 0},
		{Name: "reward_type", Type: field.TypeString, Default: "none"},
		{Name: "reward_value", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
	}
	// UserAchievementsColumns holds the columns for the "user_achievements" table.
	UserAchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "learner_id", Type: field.TypeInt64},
		{Name: "progress_value", Type: field.TypeInt64, Default: 0},
		{Name: "earned_at", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeInt64},
	}
	// UserAchievementsTable holds the schema information for the "user_achievements" table.
	UserAchievementsTable = &schema.Table{
		Name:       "user_achievements",
		Columns:    UserAchievementsColumns,
		PrimaryKey: []*schema.Column{UserAchievementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_achievements_achievements_grants",
				Columns:    []*schema.Column{UserAchievementsColumns[4]},
				RefColumns: []*schema.Column{AchievementsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "userachievement_learner_id_achievement_id", Unique: true, Columns: []*schema.Column{UserAchievementsColumns[1], UserAchievementsColumns[4]}},
		},
	}
	// AppUnlocksColumns holds the columns for the "app_unlocks" table.
	AppUnlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "learner_id", Type: field.TypeInt64},
		{Name: "reward_id", Type: field.TypeInt64},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AppUnlocksTable holds the schema information for the "app_unlocks" table.
	AppUnlocksTable = &schema.Table{
		Name:       "app_unlocks",
		Columns:    AppUnlocksColumns,
		PrimaryKey: []*schema.Column{AppUnlocksColumns[0]},
		Indexes: []*schema.Index{
			{Name: "appunlock_learner_id_reward_id", Unique: true, Columns: []*schema.Column{AppUnlocksColumns[1], AppUnlocksColumns[2]}},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		WordsTable,
		LearnerProgressTable,
		QuestionsTable,
		SubmissionsTable,
		WrongAnswersTable,
		AchievementsTable,
		UserAchievementsTable,
		AppUnlocksTable,
	}
)

func init() {
	LearnerProgressTable.ForeignKeys[0].RefTable = WordsTable
	WrongAnswersTable.ForeignKeys[0].RefTable = QuestionsTable
	UserAchievementsTable.ForeignKeys[0].RefTable = AchievementsTable
}
