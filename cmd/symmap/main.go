// Command symmap matches obfuscated class, method and field symbols
// between two versions of a JVM-class-format archive, emitting a plain
// text mapping file (spec §6). Grounded on the teacher's cmd/consensus
// (a spf13/cobra root command with flag-driven configuration).
package main

import (
	"fmt"
	"os"

	"github.com/RuneBox/symmap/classfile"
	"github.com/RuneBox/symmap/config"
	"github.com/RuneBox/symmap/engine"
	"github.com/RuneBox/symmap/metrics"
	"github.com/RuneBox/symmap/passes"
	"github.com/RuneBox/symmap/report"
	"github.com/RuneBox/symmap/symbol"
	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagPreset       string
	flagHybridRanker bool
)

func main() {
	root := &cobra.Command{
		Use:   "symmap <archiveA> <archiveB> [outputPath]",
		Short: "Match obfuscated symbols between two archive versions",
		Long: `symmap runs the voting-based iterative matching engine over two versions
of a JVM-class-format archive, producing a plain text mapping of every
class, method and field the engine could confirm a correspondence for.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runMatch,
	}
	root.Flags().StringVar(&flagPreset, "preset", "default", "configuration preset: default or strict")
	root.Flags().BoolVar(&flagHybridRanker, "hybrid-ranker", false, "enable or disable the late-stage hybrid TF-IDF/KNN ranker, overriding the preset's setting when given")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "symmap: %v\n", err)
		os.Exit(1)
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	archiveA, archiveB := args[0], args[1]
	outputPath := "mappings.txt"
	if len(args) == 3 {
		outputPath = args[2]
	}

	builder := config.NewBuilder().FromPreset(flagPreset)
	if cmd.Flags().Changed("hybrid-ranker") {
		builder = builder.WithHybridRanker(flagHybridRanker)
	}
	cfg, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building configuration: %w", err)
	}

	logger := log.NewLogger("symmap")
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	nonObfuscated := symbol.PrefixPredicate(cfg.NonObfuscatedPrefixes)
	reader := classfile.NewZipReader(nonObfuscated)

	envA, err := reader.Load(archiveA)
	if err != nil {
		return fmt.Errorf("loading %s: %w", archiveA, err)
	}
	envB, err := reader.Load(archiveB)
	if err != nil {
		return fmt.Errorf("loading %s: %w", archiveB, err)
	}

	e := engine.New(envA, envB, cfg, logger, m)
	passes.BuildDefaultPipeline(e, nonObfuscated)

	result := e.Run()
	if !result.Converged {
		logger.Warn("matching pipeline did not converge within the iteration cap")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := report.NewWriter().Write(out, result); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	logger.Info("matching complete",
		zap.Int("classes", len(result.Classes)),
		zap.Int("methods", len(result.Methods)),
		zap.Int("fields", len(result.Fields)),
	)
	return nil
}
