package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"
)

type globalOptions struct {
	Demo demoOptions `group:"tinyinput"`
}

// We can't use `default` because options are parsed twice: once from config files and once from flags.
type demoOptions struct {
	Ask       []string `long:"ask" short:"a" value-name:"NAME:TYPE[?]:PROMPT" description:"Ask a question. A trailing ? on TYPE uses the zero value after invalid input."`
	Secret    []string `long:"secret" value-name:"NAME" description:"Read the answer to the named question without echo"`
	Format    string   `long:"format" short:"f" description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"table" choice:"template" default-mask:"text"`
	Template  string   `long:"template" description:"text/template used by --format=template"`
	Retry     int      `long:"retry" description:"Ask again up to this many times after invalid input"`
	PromptTo  string   `long:"prompt-to" description:"Stream receiving prompts" choice:"stdout" choice:"stderr" default-mask:"stdout"`
	NoColor   bool     `long:"no-color" description:"Disable colored error messages"`
	Config    string   `long:"config" description:"Read options from this file after the default config files"`
	ListTypes bool     `long:"list-types" description:"List the types accepted by --ask and exit"`
	Debug     bool     `long:"debug" hidden:"true"`
	Help      bool     `long:"help" short:"h" hidden:"true"`
}

const cnfFileName = ".tinyinput.cnf"

var longDescription = heredoc.Doc(`
	Asks questions on the terminal and prints the typed answers.

	Without --ask, it asks for an integer, a float (0 when invalid) and a string.
	Options are also read from ~/.tinyinput.cnf and ./.tinyinput.cnf, e.g.

	  [tinyinput]
	  format = json
	  retry = 2
`)

func newParser(data *globalOptions, options flags.Options) *flags.Parser {
	p := flags.NewParser(data, options)
	p.Name = "tinyinput-demo"
	p.Usage = "[OPTIONS]"
	p.LongDescription = longDescription
	return p
}

func writeHelp(w io.Writer) {
	newParser(&globalOptions{}, flags.None).WriteHelp(w)
}

func defaultConfigFiles() []string {
	var files []string
	if currentUser, err := user.Current(); err == nil {
		files = append(files, filepath.Join(currentUser.HomeDir, cnfFileName))
	}

	cwd, _ := os.Getwd() // ignore err
	return append(files, filepath.Join(cwd, cnfFileName))
}

// parseOptions applies, in increasing precedence, the default config files,
// the --config file and the command line.
func parseOptions(args []string, fs afero.Fs, configFiles []string) (demoOptions, error) {
	var pre globalOptions
	if err := parseArgs(&pre, args); err != nil {
		return demoOptions{}, err
	}
	if pre.Demo.Help {
		return pre.Demo, nil
	}

	var gopts globalOptions
	configParser := flags.NewIniParser(newParser(&gopts, flags.None))
	for _, name := range configFiles {
		if err := readConfigFile(configParser, fs, name, false); err != nil {
			return demoOptions{}, err
		}
	}
	if pre.Demo.Config != "" {
		if err := readConfigFile(configParser, fs, pre.Demo.Config, true); err != nil {
			return demoOptions{}, err
		}
	}

	if err := parseArgs(&gopts, args); err != nil {
		return demoOptions{}, err
	}
	return gopts.Demo, nil
}

func parseArgs(gopts *globalOptions, args []string) error {
	rest, err := newParser(gopts, flags.PassDoubleDash).ParseArgs(args)
	if err != nil {
		return withExitCode(exitCodeUsage, fmt.Errorf("invalid options: %w", err))
	}
	if len(rest) > 0 {
		return withExitCode(exitCodeUsage, fmt.Errorf("unexpected arguments: %q", rest))
	}
	return nil
}

func readConfigFile(iniParser *flags.IniParser, fs afero.Fs, name string, required bool) error {
	f, err := fs.Open(name)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return withExitCode(exitCodeUsage, fmt.Errorf("failed to open config file: %w", err))
	}
	defer f.Close()

	if err := iniParser.Parse(f); err != nil {
		return withExitCode(exitCodeUsage, fmt.Errorf("invalid config file %s: %w", name, err))
	}
	return nil
}
