package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/tell/pkg/format"
	"github.com/rileyhilliard/tell/pkg/tell"
)

// Pacing for the demo so live progress is visible on a real terminal.
var demoDelay = 120 * time.Millisecond

// demoCmd walks through the full narration vocabulary
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the narration output vocabulary",
	Long: `Run a scripted narration that exercises every output form:
leveled messages, status verbs, nested tasks with steps, live progress,
deduplicated warnings, timers, and formatted values.

Examples:
  tell demo
  tell demo --level trace
  tell demo --plain`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDemo(tell.Default())
		return nil
	},
}

func runDemo(log *tell.Logger) {
	log.Info("Starting demo")
	log.Debug("Debug lines only show at [cyan]--level debug[/] or below")
	log.Trace("Trace lines only show at [cyan]--level trace[/]")

	task := log.Task("Build assets")
	log.Step("Transpiling modules")
	time.Sleep(demoDelay)
	log.Step("Bundling")
	time.Sleep(demoDelay)
	task.End(nil)

	_ = log.RunTask("Sync files", func() error {
		progress := log.Progress(3, "Uploading")
		for i := 0; i < 3; i++ {
			time.Sleep(demoDelay)
			progress.Tick()
		}
		progress.Done(true)
		return nil
	})

	log.WarnOnce("Flag --fast is deprecated")
	log.WarnOnce("Flag --fast is deprecated") // suppressed

	log.Time("fetch")
	time.Sleep(demoDelay)
	log.TimeEnd("fetch")

	section := log.Section("Formatting helpers")
	log.Info(fmt.Sprintf("Revenue %s", format.USD(1234.56, true)))
	log.Info(fmt.Sprintf("Revenue (unsigned) %s", format.USD(1234.56, false)))
	log.Info(fmt.Sprintf("Change %s", format.Percentage(15.234, true)))
	log.Info(fmt.Sprintf("Payload %s", format.Bytes(48_234_511)))
	section.End()

	worker := log.WithPrefix("worker").Tag("eu-west")
	worker.Event("Cache warmed")
	worker.Ready("Accepting jobs")

	log.Success("Demo finished")
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
