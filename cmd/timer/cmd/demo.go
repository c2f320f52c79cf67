package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NoNaeAbC/timer/pkg/timer"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the measurement series API",
	Long: `Records a short measurement session with named and auto-numbered
events, prints the running measurements, and finishes with a scoped
code section timer.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("Timer example:")

	t := timer.New[string](timerOptions()...)
	t.Initialize()

	time.Sleep(time.Second)
	if err := t.Add("First measurement"); err != nil {
		return err
	}
	if err := t.PrintCurrent(); err != nil {
		return err
	}
	if err := t.Add("Second measurement"); err != nil {
		return err
	}
	if err := t.PrintCurrent(); err != nil {
		return err
	}

	time.Sleep(200 * time.Millisecond)
	if err := t.Add("third measurement"); err != nil {
		return err
	}
	if err := t.Add("Last measurement"); err != nil {
		return err
	}

	t.Log()

	fmt.Println()
	fmt.Println("Code section example:")
	timedSection()
	return nil
}

// timedSection exists to show the one-line scoped timer.
func timedSection() {
	defer timer.Section("timedSection")()
}
