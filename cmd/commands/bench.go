package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"recobench/pkg/core"
	"recobench/pkg/reporter"
	"recobench/pkg/runlog"
	"recobench/pkg/unit"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newBenchCommand() *cobra.Command {
	var (
		sizes      []string
		algorithms []string
		topK       int
		provider   string
		format     string
		outputPath string
		logDir     string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizesResolved := resolveSlice(sizes, appConfig.Sizes)
			if len(sizesResolved) == 0 {
				return errors.New("at least one dataset size is required")
			}
			algosResolved := resolveSlice(algorithms, appConfig.Algorithms)
			if len(algosResolved) == 0 {
				return errors.New("at least one algorithm is required")
			}
			topKResolved := resolveInt(topK, appConfig.TopK, 10)
			providerResolved := resolveString(provider, appConfig.Provider)
			if providerResolved == "" {
				providerResolved = "mock"
			}
			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = "table"
			}
			outputResolved := resolveString(outputPath, appConfig.Output)
			logDirResolved := resolveString(logDir, appConfig.LogDir)
			logFormatResolved := resolveString(logFormat, appConfig.LogFormat)
			if logFormatResolved == "" {
				logFormatResolved = "json"
			}

			parsedSizes := make([]core.DatasetSize, 0, len(sizesResolved))
			for _, raw := range sizesResolved {
				size, err := core.ParseSize(raw)
				if err != nil {
					return err
				}
				parsedSizes = append(parsedSizes, size)
			}

			units, err := unit.Build(providerResolved, algosResolved, appConfig.Units)
			if err != nil {
				return err
			}

			total := len(parsedSizes) * len(algosResolved)
			progress := newProgressBar(progressWriter(cmd), total)
			progress.Update(0)

			harness := core.Harness{
				Sizes:      parsedSizes,
				Algorithms: algosResolved,
				TopK:       topKResolved,
				Units:      units,
				Logger:     logger,
				Progress: func(completed, total int) {
					progress.Update(completed)
				},
			}

			report, err := harness.Run(context.Background())
			if err != nil {
				return err
			}
			if report.Metadata == nil {
				report.Metadata = map[string]string{}
			}
			report.Metadata["provider"] = providerResolved

			writer := os.Stdout
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			if err := rep.Report(report); err != nil {
				return err
			}

			if logFormatResolved != "none" {
				if logDirResolved == "" {
					logDirResolved = "./logs"
				}
				if err := writeRunLog(logFormatResolved, logDirResolved, report); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sizes, "sizes", nil, "dataset sizes (100k, 1m, 10m, 20m)")
	cmd.Flags().StringSliceVar(&algorithms, "algos", nil, "algorithm ids (als, bpr, fastai, ncf, sar, svd)")
	cmd.Flags().IntVar(&topK, "top-k", 0, "top-K cutoff for ranking metrics")
	cmd.Flags().StringVar(&provider, "provider", "", "unit provider (mock, exec)")
	cmd.Flags().StringVar(&format, "format", "", "output format (table, json, html, markdown, csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for run logs")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "run log format (json, none)")

	return cmd
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func writeRunLog(format string, logDir string, report core.RunReport) error {
	switch format {
	case "json":
		log := runlog.FromReport(report)
		_, err := runlog.WriteJSON(logDir, log)
		return err
	case "none":
		return nil
	default:
		return fmt.Errorf("unknown log format: %s", format)
	}
}

type progressBar struct {
	writer io.Writer
	total  int
	start  time.Time
	isTTY  bool
}

func newProgressBar(writer io.Writer, total int) *progressBar {
	return &progressBar{
		writer: writer,
		total:  total,
		start:  time.Now(),
		isTTY:  isTerminal(writer),
	}
}

func (p *progressBar) Update(completed int) {
	width := 30
	if p.total <= 0 {
		return
	}

	ratio := float64(completed) / float64(p.total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	bar := strings.Repeat("=", filled) + strings.Repeat(".", width-filled)
	percent := int(ratio * 100)
	elapsed := time.Since(p.start).Truncate(time.Second)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	line := fmt.Sprintf("[%s] %3d%% (%d/%d) %s", barStyle.Render(bar), percent, completed, p.total, elapsed)
	if p.isTTY {
		fmt.Fprintf(p.writer, "\r%s", line)
	} else {
		fmt.Fprintf(p.writer, "%s\n", line)
	}

	if completed >= p.total {
		fmt.Fprintln(p.writer)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func progressWriter(cmd *cobra.Command) io.Writer {
	stderr := cmd.ErrOrStderr()
	stdout := cmd.OutOrStdout()

	if isTerminal(stderr) {
		return stderr
	}
	if isTerminal(stdout) {
		return stdout
	}
	return stderr
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveSlice(value []string, fallback []string) []string {
	if len(value) > 0 {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, defaultValue int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}
