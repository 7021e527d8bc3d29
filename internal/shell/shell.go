// Package shell implements the interactive line-oriented front end: it asks
// for a flag, a mode, the files or folder to rename and a flag position,
// then hands the batch to a rename.Renamer and prints one status line per
// file.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flagren/internal/config"
	"flagren/internal/errors"
	"flagren/internal/log"
	"flagren/internal/rename"
	"flagren/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// doneToken ends the explicit file list.
const doneToken = "done"

// Shell runs one interactive renaming session.
type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	renamer rename.Renamer
	cfg     *config.Config
	styles  styles
}

// New creates a Shell reading answers from in. Informational lines go to
// out, errors and skips to errOut.
func New(in io.Reader, out, errOut io.Writer, renamer rename.Renamer, cfg *config.Config) *Shell {
	if cfg == nil {
		cfg = config.New()
	}
	return &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		renamer: renamer,
		cfg:     cfg,
		styles:  newStyles(out),
	}
}

// Run drives the session to completion. Per-file failures are printed and
// do not produce an error; only an invalid mode selection does.
func (s *Shell) Run() error {
	flag := s.ask("Enter flag to apply to files: ")
	if flag == "" && s.cfg.Defaults.Flag != "" {
		flag = s.cfg.Defaults.Flag
		fmt.Fprintln(s.out, s.styles.Hint.Render("Using default flag "+flag))
	}

	fmt.Fprintln(s.out, s.styles.Title.Render("Choose mode:"))
	fmt.Fprintln(s.out, "1. Rename specific files")
	fmt.Fprintln(s.out, "2. Rename all files in a folder")
	choice, _ := s.readLine()
	mode, err := parseMode(choice)
	if err != nil {
		fmt.Fprintln(s.errOut, "Invalid mode selected.")
		log.LogWithError(err).Debug("aborting session")
		return err
	}

	switch mode {
	case types.ModeFiles:
		s.runFiles(flag)
	case types.ModeFolder:
		s.runFolder(flag)
	}
	return nil
}

// ExitCode maps the result of Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func (s *Shell) runFiles(flag string) {
	fmt.Fprintln(s.out, "Enter file names ('done' to finish):")

	var requests []types.RenameRequest
	for {
		name, err := s.askLine("Enter file name: ")
		if err != nil && name == "" {
			break
		}
		if name == doneToken {
			break
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		replacement := s.ask(fmt.Sprintf("Enter new name for %s (Enter to skip): ", name))
		requests = append(requests, types.RenameRequest{SourcePath: name, ReplacementBase: replacement})
	}

	settings := types.FlagSettings{Flag: flag, Position: s.askPosition()}
	s.report(s.renamer.RenameAll(requests, settings))
}

func (s *Shell) runFolder(flag string) {
	folder := s.ask("Enter folder path: ")
	position := s.askPosition()

	entries, err := s.renamer.Enumerate(folder)
	if err != nil {
		if errors.IsFolderNotFound(err) {
			fmt.Fprintf(s.errOut, "Error: Folder not found -> %s\n", folder)
		} else {
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}
		return
	}
	if len(entries) == 0 {
		fmt.Fprintf(s.errOut, "No files found in folder: %s\n", folder)
		return
	}

	var total uint64
	for _, entry := range entries {
		total += uint64(entry.Size)
	}
	fmt.Fprintln(s.out, s.styles.Hint.Render(fmt.Sprintf("Found %s (%s)",
		english.Plural(len(entries), "file", "files"), humanize.Bytes(total))))

	requests := make([]types.RenameRequest, 0, len(entries))
	for _, entry := range entries {
		replacement := s.ask(fmt.Sprintf("Enter new name for file %s (Enter to skip): ", entry.BaseName))
		requests = append(requests, types.RenameRequest{SourcePath: entry.Path, ReplacementBase: replacement})
	}

	s.report(s.renamer.RenameAll(requests, types.FlagSettings{Flag: flag, Position: position}))
}

// askPosition shows the position menu. Anything other than 1 selects
// suffix; an answer outside the menu is reported first.
func (s *Shell) askPosition() types.Position {
	fmt.Fprintln(s.out, s.styles.Title.Render("Choose flag position:"))
	fmt.Fprintln(s.out, "1. Prefix (flag_filename.ext)")
	fmt.Fprintln(s.out, "2. Suffix (filename_flag.ext)")
	answer, _ := s.readLine()
	n, _ := leadingInt(answer)
	switch n {
	case 1:
		return types.Prefix
	case 2:
		return types.Suffix
	default:
		fmt.Fprintln(s.errOut, "Invalid position selected, using suffix.")
		return types.Suffix
	}
}

func (s *Shell) report(outcomes []types.Outcome) {
	for _, o := range outcomes {
		if o.IsError() {
			fmt.Fprintln(s.errOut, o.Line())
			continue
		}
		fmt.Fprintln(s.out, o.Line())
	}
	sum := types.Summarize(outcomes)
	log.Debugf("Batch finished: %d renamed, %d skipped, %d failed", sum.Renamed, sum.Skipped, sum.Failed)
}

// ask prints prompt and returns the answer, empty on end of input.
func (s *Shell) ask(prompt string) string {
	line, _ := s.askLine(prompt)
	return line
}

func (s *Shell) askLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	return s.readLine()
}

// readLine returns the next line without its terminator. The error is
// io.EOF once input is exhausted; a final unterminated line is returned
// together with io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}

func parseMode(answer string) (types.Mode, error) {
	n, ok := leadingInt(answer)
	if !ok || !types.Mode(n).Valid() {
		return 0, errors.NewInputError("invalid mode selected", answer, errors.InvalidMode)
	}
	return types.Mode(n), nil
}

// leadingInt reads the integer at the start of answer, after any leading
// blanks, and ignores whatever follows it: "2 x" and "1abc" read as 2 and 1.
func leadingInt(answer string) (int, bool) {
	answer = strings.TrimLeft(answer, " \t")
	end := 0
	if end < len(answer) && (answer[end] == '+' || answer[end] == '-') {
		end++
	}
	digits := end
	for end < len(answer) && answer[end] >= '0' && answer[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(answer[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
