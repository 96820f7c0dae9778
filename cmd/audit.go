package cmd

import (
	"context"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	gutils "github.com/Laisky/shamir-audit"
	"github.com/Laisky/shamir-audit/config"
	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
	"github.com/Laisky/shamir-audit/crypto/threshold/shamir/sharefile"
	"github.com/Laisky/shamir-audit/log"
	"github.com/Laisky/shamir-audit/report"
)

func init() {
	rootCmd.AddCommand(auditCMD)
	addAuditFlags(auditCMD)
}

func addAuditFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(config.KeyInput, "i", config.DefaultInput, "share file")
	cmd.Flags().IntP(config.KeyThreshold, "k", 0,
		"threshold, overrides keys.k of the share file when > 0")
	cmd.Flags().Int(config.KeyWorkers, runtime.NumCPU(), "goroutines to interpolate subsets")
	cmd.Flags().Uint64(config.KeyMaxSubsets, 0,
		"refuse to run when there are more threshold subsets, 0 means unbounded")
	cmd.Flags().String(config.KeyTieBreak, string(shamir.TieBreakSmallest),
		"smallest or strict, how to pick among equally supported secrets")
	cmd.Flags().StringP(config.KeyFormat, "f", config.FormatText, "report format, text or json")
	cmd.Flags().String(config.KeyColor, config.ColorAuto, "colorize text report, auto, always or never")
	cmd.Flags().BoolP(config.KeyWatch, "w", false, "audit again whenever the share file changes")
}

// auditCMD reconstruct secret and audit shares
var auditCMD = &cobra.Command{
	Use:   "audit",
	Short: "reconstruct secret and audit shares",
	Long: gutils.Dedent(`
		Interpolate every threshold subset of the shares, pick the secret
		produced by the most subsets, and grade every share by how many
		winning subsets contain it.

			shamir-audit audit -i input.json
			shamir-audit audit -i input.json -f json
			shamir-audit audit -i input.json --watch

		exits with 2 if there is no share or the threshold is invalid,
		3 if no subset interpolates to an integer secret.
	`),
	Args: NoExtraArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAuditCmd(cmd)
	},
}

func runAuditCmd(cmd *cobra.Command) error {
	settings, err := config.Shared.Audit()
	if err != nil {
		return errors.Wrap(err, "command args invalid")
	}

	a := &auditor{
		settings: settings,
		stdout:   cmd.OutOrStdout(),
		stderr:   cmd.ErrOrStderr(),
		logger:   log.Shared.Named("audit"),
	}

	if settings.Watch {
		if fpath := config.Shared.GetString(config.KeyConfig); fpath != "" {
			a.source = config.Shared
			a.configFile = fpath
		}

		return a.watch(cmd.Context())
	}

	return a.run(cmd.Context())
}

// colorEnabled resolve color mode, auto colorizes only terminals
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		fp, ok := w.(*os.File)
		return ok && gutils.IsTerminal(fp)
	}
}

// settingsSource settings that can be reloaded from a config file
type settingsSource interface {
	LoadFromFile(entryFile string, opts ...config.SettingsOptFunc) error
	Audit() (*config.Audit, error)
}

type auditor struct {
	mu        sync.Mutex
	settings  *config.Audit
	stopInput context.CancelFunc // stops watching the current share file

	// set only in watch mode with a config file
	source     settingsSource
	configFile string

	runMu          sync.Mutex
	stdout, stderr io.Writer
	logger         log.Logger
}

func (a *auditor) current() *config.Audit {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.settings
}

// run audit the share file once and write the report
func (a *auditor) run(ctx context.Context) error {
	a.runMu.Lock()
	defer a.runMu.Unlock()

	settings := a.current()
	result, runErr := a.reconstruct(ctx, settings)
	if err := a.render(settings, result, runErr); err != nil {
		return errors.Wrap(err, "render report")
	}

	return runErr
}

func (a *auditor) reconstruct(ctx context.Context, settings *config.Audit) (*shamir.Result, error) {
	doc, err := sharefile.Load(settings.Input)
	if err != nil {
		return nil, err
	}

	k := doc.K
	if settings.Threshold > 0 {
		k = settings.Threshold
	}

	opts := append(settings.Options(),
		shamir.WithDeclaredShares(doc.N),
		shamir.WithLogger(a.logger.Named("shamir")),
	)
	return shamir.Reconstruct(ctx, doc.Shares, k, opts...)
}

func (a *auditor) render(settings *config.Audit, result *shamir.Result, runErr error) error {
	if settings.Format == config.FormatJSON {
		return report.WriteJSON(a.stdout, result, runErr)
	}

	color := report.WithColor(colorEnabled(settings.Color, a.stdout))
	if runErr != nil {
		return report.WriteTextFailure(a.stderr, runErr, color)
	}

	return report.WriteText(a.stdout, result, color)
}

func (a *auditor) runLogged(ctx context.Context) {
	if err := a.run(ctx); err != nil {
		a.logger.Warn("audit failed, wait for files to change", zap.Error(err))
	}
}

// watch audit once, then audit again every time the share file
// or the config file changes, until ctx is done.
//
// failures of single runs are reported but do not stop watching.
func (a *auditor) watch(ctx context.Context) error {
	a.runLogged(ctx)

	if err := a.watchInput(ctx); err != nil {
		return err
	}

	if a.source != nil {
		if err := a.source.LoadFromFile(a.configFile,
			config.WithSettingsEnableInclude(),
			config.WithSettingsWatchFileModified(ctx, func(e fsnotify.Event) {
				a.reload(ctx, e)
			}),
		); err != nil {
			return errors.Wrap(err, "watch config file")
		}
	}

	<-ctx.Done()
	a.logger.Debug("stop watching", zap.String("file", a.current().Input))
	return nil
}

// watchInput watch the share file of current settings,
// replacing the watcher of the previous share file.
func (a *auditor) watchInput(ctx context.Context) error {
	a.mu.Lock()
	if a.stopInput != nil {
		a.stopInput()
	}
	wctx, cancel := context.WithCancel(ctx)
	a.stopInput = cancel
	input := a.settings.Input
	a.mu.Unlock()

	if err := gutils.WatchFileChanging(wctx, []string{input}, func(e fsnotify.Event) {
		a.logger.Info("share file changed, audit again", zap.String("file", e.Name))
		a.runLogged(ctx)
	}); err != nil {
		return errors.Wrapf(err, "watch share file %q", input)
	}

	return nil
}

// reload apply the reloaded config file, then audit again
func (a *auditor) reload(ctx context.Context, e fsnotify.Event) {
	settings, err := a.source.Audit()
	if err != nil {
		a.logger.Warn("invalid settings, keep the previous ones",
			zap.Error(err), zap.String("file", e.Name))
		return
	}

	a.mu.Lock()
	inputChanged := settings.Input != a.settings.Input
	a.settings = settings
	a.mu.Unlock()
	a.logger.Info("settings reloaded, audit again", zap.String("file", e.Name))

	if inputChanged {
		if err := a.watchInput(ctx); err != nil {
			a.logger.Warn("share file not watched", zap.Error(err))
		}
	}

	a.runLogged(ctx)
}
