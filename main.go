// Command voicecoach analyzes a recorded talk: it sends the audio to the
// ASR and prosody services, runs the delivery-analysis engine, and saves a
// session report with rubric scores and optional LLM coaching feedback.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/voicecoach/voicecoach/config"
	"github.com/voicecoach/voicecoach/engine"
	"github.com/voicecoach/voicecoach/orchestrator"
)

var (
	configPath string
	skipCoach  bool
)

func main() {
	root := &cobra.Command{
		Use:           "voicecoach",
		Short:         "Speech delivery analysis and coaching",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to voicecoach.yaml")

	analyze := &cobra.Command{
		Use:   "analyze <audio file>",
		Short: "Analyze a recording and write a session report",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyze.Flags().BoolVar(&skipCoach, "skip-llm", false, "bypass the coach LLM and just compute metrics")
	root.AddCommand(analyze)

	root.AddCommand(&cobra.Command{
		Use:   "config-init [path]",
		Short: "Write a default voicecoach.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "voicecoach.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteTemplate(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Fatal("voicecoach failed")
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if skipCoach {
		conf.Services.Coach.Skip = true
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(conf.Pipeline.LogLvl); err == nil {
		log.SetLevel(lvl)
	}

	audio := args[0]
	if _, err := os.Stat(audio); err != nil {
		return fmt.Errorf("audio file: %w", err)
	}

	p := orchestrator.NewPipeline(conf, log)
	session, err := p.Run(cmd.Context(), audio)
	if err != nil {
		return err
	}

	fmt.Printf("session %s\n", session.ID)
	for _, dim := range engine.Dimensions {
		fmt.Printf("  %-11s %d/5\n", dim, session.Report.Rubric[dim])
	}
	fmt.Println(session.Feedback)
	return nil
}
