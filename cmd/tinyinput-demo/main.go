// Command tinyinput-demo asks typed questions on the terminal and prints the answers.
package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/apstndb/tinyinput"
	"github.com/apstndb/tinyinput/internal/format"
)

// environment is everything run touches outside of its arguments.
type environment struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	fs          afero.Fs
	configFiles []string
}

func main() {
	env := environment{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		fs:          afero.NewOsFs(),
		configFiles: defaultConfigFiles(),
	}

	err := run(os.Args[1:], env)
	if err != nil {
		errorColor.Fprintln(os.Stderr, err)
	}
	os.Exit(GetExitCode(err))
}

func run(args []string, env environment) error {
	opts, err := parseOptions(args, env.fs, env.configFiles)
	if err != nil {
		return err
	}

	if opts.Help {
		writeHelp(env.stdout)
		return nil
	}

	if opts.NoColor {
		color.NoColor = true
	}

	if opts.ListTypes {
		return writeTypeList(env.stdout)
	}

	formatter, err := format.Lookup(cmp.Or(opts.Format, string(format.ModeText)))
	if err != nil {
		return withExitCode(exitCodeUsage, err)
	}
	if format.Mode(opts.Format) == format.ModeTemplate && opts.Template == "" {
		return withExitCode(exitCodeUsage, fmt.Errorf("--format=template requires --template"))
	}
	if opts.Retry < 0 {
		return withExitCode(exitCodeUsage, fmt.Errorf("--retry must not be negative: %d", opts.Retry))
	}

	questions, err := buildQuestions(opts)
	if err != nil {
		return withExitCode(exitCodeUsage, err)
	}

	logger := newLogger(env.stderr, opts.Debug)
	defer func() { _ = logger.Sync() }()
	logger.Debug("starting", zap.Int("questions", len(questions)), zap.Int("retries", opts.Retry))

	s := &session{
		console: &tinyinput.Console{
			In:     env.stdin,
			Out:    lo.Ternary(opts.PromptTo == "stderr", env.stderr, env.stdout),
			Logger: logger,
		},
		errOut:  env.stderr,
		retries: opts.Retry,
		logger:  logger,
	}

	answers, err := s.askAll(questions)
	if err != nil {
		return err
	}
	return formatter(env.stdout, answers, format.Config{Template: opts.Template})
}

func buildQuestions(opts demoOptions) ([]question, error) {
	specs := lo.Ternary(len(opts.Ask) > 0, opts.Ask, defaultQuestions)

	questions := make([]question, 0, len(specs))
	for _, spec := range specs {
		q, err := parseQuestion(spec)
		if err != nil {
			return nil, err
		}
		if slices.ContainsFunc(questions, func(other question) bool { return other.Name == q.Name }) {
			return nil, fmt.Errorf("duplicate question name: %s", q.Name)
		}
		q.Secret = slices.Contains(opts.Secret, q.Name)
		questions = append(questions, q)
	}

	for _, name := range opts.Secret {
		if !slices.ContainsFunc(questions, func(q question) bool { return q.Name == name }) {
			return nil, fmt.Errorf("--secret names unknown question: %s", name)
		}
	}
	return questions, nil
}
