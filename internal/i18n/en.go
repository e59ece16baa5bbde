package i18n

import (
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

var english = Table{
	Code:          "en",
	LanguageName:  "English",
	LanguageLabel: "Language",
	LanguageNames: map[string]string{
		"es": "Spanish",
		"en": "English",
		"ja": "Japanese",
	},
	Errors: Errors{
		StartSession:  "Oops! We couldn't start the session. Please try again.",
		NextOperation: "We couldn't load the next challenge.",
		SubmitAnswer:  "We couldn't save your answer. Please try once more.",
		StatsUpload:   "We couldn't load that stats file. Make sure it's a valid JSON.",
	},
	App: App{
		HelperEarly:       "Take a deep breath and think step by step.",
		HelperLate:        "You're almost done!",
		HelperDefault:     "Add or subtract calmly, you can do it!",
		HeaderBadge:       "Let's learn by playing!",
		HeaderTitle:       "Addition & Subtraction Practice",
		HeaderDescription: "Solve each challenge by typing the correct answer and earn stars along the way.",
	},
	Settings: Settings{
		WelcomeBadge: "Welcome to MathCards!",
		Title:        "Set up your adventure",
		Description:  "Choose the type of operations you want to practice and how many challenges to tackle today.",
		ModeLabel:    "Game mode",
		ModeOptions: map[quiz.Mode]string{
			quiz.ModeSum: "Only addition",
			quiz.ModeSub: "Only subtraction",
			quiz.ModeMix: "Mixed",
		},
		DifficultyLabel: "Difficulty",
		DifficultyOptions: [quiz.MaxDifficulty]string{
			"1 digit",
			"2 digits (1 + 2)",
			"2 digits (2 + 2)",
			"3 and 2 digits",
			"3 digits",
			"4 and 3 digits",
		},
		CountLabel:     "Number of challenges",
		CountOption:    "%d challenges",
		StartButton:    "Start now!",
		LoadingButton:  "Preparing challenges...",
		LanguageHelper: "You can change the language at any time.",

		StatsPreviewTitle:           "Your statistics",
		StatsPreviewEmpty:           "Your results will appear here after you finish your first session.",
		StatsPreviewSessions:        "%d saved sessions",
		StatsPreviewAverageScore:    "Average score: %s%%",
		StatsPreviewBestScore:       "Best score: %s%%",
		StatsPreviewAverageDuration: "Average time: %s",
		StatsPreviewLastScore:       "Last score: %s%%",
		StatsPreviewLastDuration:    "Last time: %s",
		StatsPreviewLastUpdated:     "Last session: %s",
	},
	Card: Card{
		ChallengeLabel:    "Challenge %d of %d",
		StarsEarned:       "%d stars",
		Question:          "What is the result?",
		ProgressLabel:     "Progress: %d%%",
		AnswerLabel:       "Your answer",
		AnswerPlaceholder: "Type the result",
		SubmitButton:      "Check answer",
		ErrRequired:       "Please enter your answer before continuing.",
		ErrInvalid:        "Only whole numbers are allowed.",
		FeedbackCorrect:   "Great job!",
		FeedbackIncorrect: "Almost! The correct answer is %s.",
	},
	Summary: Summary{
		Title: "Session complete! 🎉",
		ModeMessages: map[quiz.Mode]string{
			quiz.ModeMix: "Today you mastered addition and subtraction like a true explorer.",
			quiz.ModeSum: "Addition problems have no secrets for you now.",
			quiz.ModeSub: "Subtraction bows to your skills!",
		},
		CardCorrect:  "Correct",
		CardWrong:    "Needs work",
		CardScore:    "Your score",
		CardDuration: "Time spent",
		Encouragement: map[stats.EncouragementTier]string{
			stats.EncourageTop:  "You're a math superstar!",
			stats.EncourageHigh: "Great job, keep practicing!",
			stats.EncourageMid:  "Every try makes you stronger.",
			stats.EncourageLow:  "Don't give up! Tomorrow will be even better.",
		},
		Restart:         "Play again",
		StatsTitle:      "Saved statistics",
		TotalSessions:   "%d sessions",
		BestScore:       "Best score: %s%%",
		AverageScore:    "Average score: %s%%",
		AverageDuration: "Average time: %s",
		BestDuration:    "Best time: %s",
		LastDuration:    "Last time: %s",
		LastUpdated:     "Last session: %s",
		Download:        "Download stats",
		Downloaded:      "Stats saved to %s",
		Upload:          "Load stats",
		Uploaded:        "%d sessions loaded",
		UploadHint:      "Choose a JSON file with your saved statistics.",
		StatsError:      "Unable to load: %s",
	},
	Duration: stats.UnitFormatter("min", "s"),
}
