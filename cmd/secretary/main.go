package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	return newRootCmd(&cliFlags{}).Execute()
}

func newRootCmd(flags *cliFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   "secretary",
		Short: "Transcribe a directory of videos into sentence-per-line text files",
		Long: `secretary cuts every video in the input directory into 60 second audio chunks,
sends each chunk to a cloud speech-recognition API, splits the recognized text
into sentences and appends them to <output>/<YYYYmmddHHMMSS>/<video>.txt.`,
		Example: `  secretary -i ./data -o ./output
  secretary -c secretary.yaml --backend openai --language en-US
  secretary watch -i ./inbox`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(flags.resolve(cmd))
		},
	}
	root.Version = version
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.input, "input", "i", "./data", "Input directory of video files")
	pf.StringVarP(&flags.output, "output", "o", "./output", "Output directory; a timestamped run directory is created inside")
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file (YAML or TOML)")
	pf.StringVar(&flags.backend, "backend", "", "Speech backend: gemini|openai")
	pf.StringVar(&flags.language, "language", "", "Spoken language, e.g. ja-JP")
	pf.BoolVar(&flags.noProgress, "no-progress", false, "Disable progress bars")

	root.AddCommand(newWatchCmd(flags))

	return root
}

func newWatchCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process the input directory, then keep transcribing new videos dropped into it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(flags.resolve(cmd))
		},
	}
}
