package i18n

import (
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/stats"
)

var japanese = Table{
	Code:          "ja",
	LanguageName:  "日本語",
	LanguageLabel: "言語",
	LanguageNames: map[string]string{
		"es": "スペイン語",
		"en": "英語",
		"ja": "日本語",
	},
	Errors: Errors{
		StartSession:  "セッションを開始できませんでした。もう一度お試しください。",
		NextOperation: "次のチャレンジを読み込めませんでした。",
		SubmitAnswer:  "回答を保存できませんでした。もう一度試してください。",
		StatsUpload:   "統計ファイルを読み込めませんでした。有効なJSONファイルを選択してください。",
	},
	App: App{
		HelperEarly:       "深呼吸して、順番に考えてみよう。",
		HelperLate:        "あと少しでゴール！",
		HelperDefault:     "落ち着いて計算しよう。きっとできるよ！",
		HeaderBadge:       "遊びながら学ぼう！",
		HeaderTitle:       "たし算・ひき算の練習",
		HeaderDescription: "チャレンジに答えを書き込んで、正解すると星がもらえるよ。",
	},
	Settings: Settings{
		WelcomeBadge: "MathCardsへようこそ！",
		Title:        "冒険の設定",
		Description:  "練習したい計算と今日挑戦するチャレンジの数を選びましょう。",
		ModeLabel:    "ゲームモード",
		ModeOptions: map[quiz.Mode]string{
			quiz.ModeSum: "たし算のみ",
			quiz.ModeSub: "ひき算のみ",
			quiz.ModeMix: "ミックス",
		},
		DifficultyLabel: "レベル",
		DifficultyOptions: [quiz.MaxDifficulty]string{
			"1けた",
			"2けた（1 + 2）",
			"2けた（2 + 2）",
			"3けたと2けた",
			"3けた",
			"4けたと3けた",
		},
		CountLabel:     "チャレンジ数",
		CountOption:    "%d 問",
		StartButton:    "今すぐスタート",
		LoadingButton:  "チャレンジを準備中…",
		LanguageHelper: "言語はいつでも変更できます。",

		StatsPreviewTitle:           "統計情報",
		StatsPreviewEmpty:           "最初のセッションを終えると結果がここに表示されます。",
		StatsPreviewSessions:        "保存済みセッション: %d",
		StatsPreviewAverageScore:    "平均スコア: %s%%",
		StatsPreviewBestScore:       "最高スコア: %s%%",
		StatsPreviewAverageDuration: "平均時間: %s",
		StatsPreviewLastScore:       "前回のスコア: %s%%",
		StatsPreviewLastDuration:    "今回の時間: %s",
		StatsPreviewLastUpdated:     "前回のセッション: %s",
	},
	Card: Card{
		ChallengeLabel:    "チャレンジ %d / %d",
		StarsEarned:       "スター %d 個",
		Question:          "答えはいくつかな？",
		ProgressLabel:     "進行状況: %d%%",
		AnswerLabel:       "答え",
		AnswerPlaceholder: "結果を入力しよう",
		SubmitButton:      "こたえを送る",
		ErrRequired:       "答えを入力してね。",
		ErrInvalid:        "数字だけを入力してね。",
		FeedbackCorrect:   "よくできました！",
		FeedbackIncorrect: "おしい！ 正しい答えは %s だよ。",
	},
	Summary: Summary{
		Title: "セッション完了！🎉",
		ModeMessages: map[quiz.Mode]string{
			quiz.ModeMix: "今日は探検家のように たし算とひき算を征服したね。",
			quiz.ModeSum: "たし算の問題はもう完璧！",
			quiz.ModeSub: "ひき算も君の得意技だね！",
		},
		CardCorrect:  "正解",
		CardWrong:    "要復習",
		CardScore:    "スコア",
		CardDuration: "かかった時間",
		Encouragement: map[stats.EncouragementTier]string{
			stats.EncourageTop:  "君は算数のスターだよ！",
			stats.EncourageHigh: "とてもよくできたね。続けていこう！",
			stats.EncourageMid:  "挑戦するたびに強くなるよ。",
			stats.EncourageLow:  "あきらめないで！明日はもっと良くなるよ。",
		},
		Restart:         "もう一度遊ぶ",
		StatsTitle:      "保存された統計",
		TotalSessions:   "セッション数: %d",
		BestScore:       "最高スコア: %s%%",
		AverageScore:    "平均スコア: %s%%",
		AverageDuration: "平均時間: %s",
		BestDuration:    "最短時間: %s",
		LastDuration:    "今回の時間: %s",
		LastUpdated:     "最新セッション: %s",
		Download:        "統計をダウンロード",
		Downloaded:      "統計を %s に保存しました",
		Upload:          "統計を読み込む",
		Uploaded:        "%d 件のセッションを読み込みました",
		UploadHint:      "保存した統計のJSONファイルを選択してください。",
		StatsError:      "読み込みエラー: %s",
	},
	Duration: stats.UnitFormatter("分", "秒"),
}
