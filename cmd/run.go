package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/mathcards/internal/app"
	"github.com/abhisek/mathcards/internal/config"
	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/quiz"
	"github.com/abhisek/mathcards/internal/quizapi"
	"github.com/abhisek/mathcards/internal/screen"
	"github.com/abhisek/mathcards/internal/session"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmdContext(cmd)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, stats, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	lang := i18n.NewSelector(resolveLanguage(ctx, cfg, st))
	client := quizapi.New(cfg.APIBaseURL, quizapi.WithTimeout(cfg.Timeout))

	env := &screen.Env{
		Session:    session.New(client, stats, lang),
		Stats:      stats,
		Prefs:      st,
		Lang:       lang,
		ExportPath: config.DefaultExportPath(),
	}
	if id, _ := cmd.Flags().GetString("resume"); id != "" {
		resumeSession(ctx, env.Session, id, client.BaseURL())
	}
	return app.Run(env, cfg.LogFile)
}

// resumeSession attaches the controller to an existing server session.
// The original settings are not known to the client, so defaults are
// recorded. A failed first load is left for the practice screen to retry.
func resumeSession(ctx context.Context, ctrl *session.Controller, id, baseURL string) {
	if err := ctrl.Resume(ctx, id, quiz.DefaultConfig()); err != nil {
		warn("Could not resume session", id, "at", baseURL+":", err)
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// warn prints a non-fatal problem to stderr.
func warn(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
}
