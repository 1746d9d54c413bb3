package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sheet-agent/internal/agent"
	"sheet-agent/internal/extproc"
	"sheet-agent/internal/sheet"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive session (same as running with no subcommand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(replCmd)
}

// repl holds the interactive session's moving parts.
type repl struct {
	dispatcher  *agent.Dispatcher
	interpreter agent.Interpreter
	voice       *extproc.Voice
	voiceNote   string // non-empty when voice input is unavailable
}

func runREPL(ctx context.Context) error {
	disp := &agent.Dispatcher{
		Session:  Session,
		Console:  Console,
		Opener:   extproc.SystemOpener{},
		PlotsDir: viper.GetString("settings.plots_dir"),
	}

	r := &repl{dispatcher: disp}
	r.setupVoice()
	r.setupInterpreter()

	Console.Welcome(r.voiceNote)

	if infos, err := Store.List(); err == nil && len(infos) > 0 {
		Console.Info(fmt.Sprintf("Found %d existing spreadsheet(s)", len(infos)))
		Console.SheetList(infos, Session.Current())
		if name, selected, err := Session.AutoSelect(); err == nil && selected {
			Console.Info(fmt.Sprintf("Auto-selected '%s'", name))
		}
	}

	rl, err := readline.New("> ")
	if err != nil {
		return fmt.Errorf("failed to init prompt: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			Console.Info("Use !quit to exit")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if !r.process(ctx, strings.TrimSpace(line)) {
			break
		}
	}
	Console.Info("Goodbye!")
	return nil
}

func (r *repl) setupVoice() {
	ffmpegBin := viper.GetString("voice.ffmpeg")
	cliOverride := viper.GetString("voice.whisper_cli")
	modelOverride := viper.GetString("voice.whisper_model")

	ok, missing := extproc.CheckVoice(ffmpegBin, cliOverride, modelOverride)
	if !ok {
		r.voiceNote = "Voice input disabled. " + missing
		return
	}
	r.voice = &extproc.Voice{
		Recorder: &extproc.FFmpegRecorder{Binary: ffmpegBin, Stop: os.Stdin, Status: os.Stdout},
		Transcriber: &extproc.WhisperTranscriber{
			Binary: extproc.FindWhisperCLI(cliOverride),
			Model:  extproc.FindWhisperModel(modelOverride),
		},
		MaxDuration: time.Duration(viper.GetInt("voice.max_seconds")) * time.Second,
	}
}

func (r *repl) setupInterpreter() {
	client, err := agent.NewClient(r.dispatcher.Dispatch)
	if err != nil {
		Console.Info(fmt.Sprintf("Natural language disabled: %v. '!' commands still work.", err))
		return
	}
	r.interpreter = client
}

// process handles one line. Returns false when the session should end.
func (r *repl) process(ctx context.Context, input string) bool {
	if input == "" {
		return true
	}
	if strings.HasPrefix(input, "!") {
		return r.bang(ctx, input)
	}

	if r.interpreter == nil {
		Console.Error("Natural language input is disabled (set ANTHROPIC_API_KEY)")
		return true
	}

	Console.Info("Processing...")
	text, err := r.interpreter.Interpret(ctx, input)
	if err != nil {
		Console.Error(fmt.Sprintf("Error processing command: %v", err))
		return true
	}
	if text != "" {
		fmt.Fprintln(Console.Out, text)
	}
	return true
}

func (r *repl) bang(ctx context.Context, input string) bool {
	cmd := strings.ToLower(input)

	switch {
	case cmd == "!quit" || cmd == "!exit" || cmd == "!q":
		return false

	case cmd == "!help" || cmd == "!h":
		Console.Help()

	case cmd == "!show" || cmd == "!display" || cmd == "!d":
		if _, err := r.dispatcher.Dispatch(agent.Show{}); err != nil {
			if errors.Is(err, sheet.ErrNoSelection) {
				Console.Info("No spreadsheet selected. Create one first.")
			} else {
				Console.Error(err.Error())
			}
		}

	case cmd == "!list" || cmd == "!ls":
		if _, err := r.dispatcher.Dispatch(agent.List{}); err != nil {
			Console.Error(err.Error())
		}

	case strings.HasPrefix(cmd, "!export"):
		filename := ""
		if parts := strings.SplitN(input, " ", 2); len(parts) > 1 {
			filename = strings.TrimSpace(parts[1])
		}
		if _, err := r.dispatcher.Dispatch(agent.Export{Filename: filename}); err != nil {
			Console.Error(err.Error())
		}

	case cmd == "!voice" || cmd == "!v":
		if r.voice == nil {
			Console.Error("Voice input not available. " + r.voiceNote)
			return true
		}
		text, err := r.voice.Capture(ctx)
		if err != nil {
			Console.Error(err.Error())
			return true
		}
		Console.Transcription(text)
		return r.process(ctx, text)

	default:
		Console.Error("Unknown command: " + cmd)
		Console.Info("Type !help for available commands")
	}
	return true
}
