package cmd

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/NoNaeAbC/timer/pkg/timer"
)

var probeParallel bool

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Time the phases of a hardware inventory",
	Long: `Collects CPU, memory, host and disk information, records one timer
event per phase, then renders the measurement series in the requested
output format.`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().BoolVar(&probeParallel, "parallel", false, "probe subsystems from separate goroutines")
}

// probePhases lists the collection calls being timed. The collected
// values are discarded; only the timing matters here.
var probePhases = []struct {
	name    string
	collect func() error
}{
	{"cpu", func() error { _, err := cpu.Info(); return err }},
	{"memory", func() error { _, err := mem.VirtualMemory(); return err }},
	{"host", func() error { _, err := host.Info(); return err }},
	{"disk", func() error { _, err := disk.Partitions(false); return err }},
}

func runProbe(cmd *cobra.Command, args []string) error {
	t := timer.New[string](timerOptions()...)
	t.Initialize()

	if probeParallel {
		var wg sync.WaitGroup
		for _, phase := range probePhases {
			wg.Add(1)
			go func(name string, collect func() error) {
				defer wg.Done()
				if err := collect(); err != nil {
					log.Printf("probe %s: %v", name, err)
				}
				if err := t.Add(name); err != nil {
					log.Printf("record %s: %v", name, err)
				}
			}(phase.name, phase.collect)
		}
		wg.Wait()
	} else {
		for _, phase := range probePhases {
			if err := phase.collect(); err != nil {
				log.Printf("probe %s: %v", phase.name, err)
			}
			if err := t.Add(phase.name); err != nil {
				return err
			}
		}
	}

	switch outputFormat {
	case "table":
		renderTable(t.Snapshot())
	case "yaml":
		return renderYAML(t.Snapshot())
	default:
		t.Log()
	}
	return nil
}

func renderTable(rows []timer.Measurement) {
	table := tablewriter.NewWriter(os.Stdout)

	// goroutine indices are only present after a multi-goroutine session
	withGoroutines := len(rows) > 0 && rows[0].Goroutine >= 0
	if withGoroutines {
		table.Header("Phase", "Since Last", "Since Start", "Goroutine")
	} else {
		table.Header("Phase", "Since Last", "Since Start")
	}

	for _, row := range rows {
		if withGoroutines {
			table.Append(
				row.Label,
				timer.FormatDuration(row.SinceLast),
				timer.FormatDuration(row.SinceStart),
				fmt.Sprintf("%d", row.Goroutine),
			)
		} else {
			table.Append(
				row.Label,
				timer.FormatDuration(row.SinceLast),
				timer.FormatDuration(row.SinceStart),
			)
		}
	}

	table.Render()
}

func renderYAML(rows []timer.Measurement) error {
	out, err := yaml.Marshal(rows)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
