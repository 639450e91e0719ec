package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dshills/textscan/internal/jsonutil"
	"github.com/dshills/textscan/internal/scan"
	"github.com/dshills/textscan/internal/script"
	"github.com/dshills/textscan/internal/watcher"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print each token on its own line",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

var linesCmd = &cobra.Command{
	Use:   "lines [file]",
	Short: "Print each line without its terminator",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLines,
}

var blockCmd = &cobra.Command{
	Use:   "block [file]",
	Short: "Extract the content of a delimited block",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBlock,
}

var reachCmd = &cobra.Command{
	Use:   "reach [file]",
	Short: "Print the text before the first match of a literal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReach,
}

var jsonCmd = &cobra.Command{
	Use:       "json get|set|del [file]",
	Short:     "Query or edit a JSON document by path",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"get", "set", "del"},
	RunE:      runJSON,
}

var scriptCmd = &cobra.Command{
	Use:   "script script.lua [input]",
	Short: "Run a Lua extraction script against the input",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runScript,
}

var watchCmd = &cobra.Command{
	Use:   "watch file",
	Short: "Re-run a Lua script whenever the file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	blockCmd.Flags().String("open", "{", "Opening delimiter")
	blockCmd.Flags().String("close", "}", "Closing delimiter")
	blockCmd.Flags().IntP("nth", "n", 1, "Which block occurrence to extract")
	blockCmd.Flags().String("after", "", "Anchor literal to pass before extracting")

	reachCmd.Flags().String("to", "", "Literal to search for")
	reachCmd.Flags().Bool("beyond", false, "Place the cursor after the literal")
	_ = reachCmd.MarkFlagRequired("to")

	jsonCmd.Flags().String("path", "", "JSON path (gjson syntax)")
	jsonCmd.Flags().String("value", "", "Value for set (raw JSON or string)")
	jsonCmd.Flags().Bool("pretty", false, "Pretty-print the output document")
	_ = jsonCmd.MarkFlagRequired("path")

	watchCmd.Flags().String("script", "", "Lua script to run on each change")
	_ = watchCmd.MarkFlagRequired("script")
}

func runTokens(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	s := newScanner(cmd, text)

	count := 0
	for {
		if err := s.Token(); err != nil {
			if errors.Is(err, scan.ErrBufferEnd) {
				break
			}
			return err
		}
		fmt.Println(s.Result())
		count++
	}
	cons.Debugf("%d tokens", count)
	return nil
}

func runLines(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	s := newScanner(cmd, text)

	for {
		if err := s.Line(); err != nil {
			if errors.Is(err, scan.ErrBufferEnd) {
				break
			}
			return err
		}
		fmt.Println(s.Result())
	}
	return nil
}

func runBlock(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	s := newScanner(cmd, text)

	open, _ := cmd.Flags().GetString("open")
	closing, _ := cmd.Flags().GetString("close")
	nth, _ := cmd.Flags().GetInt("nth")
	after, _ := cmd.Flags().GetString("after")

	if after != "" {
		if nth != 1 {
			return errors.New("--after and --nth cannot be combined")
		}
		if err := s.BlockAfter(after, open, closing); err != nil {
			return fmt.Errorf("block after %q: %w", after, err)
		}
	} else if err := s.BlockN(open, closing, nth); err != nil {
		return fmt.Errorf("block %d: %w", nth, err)
	}

	fmt.Println(s.Result())
	return nil
}

func runReach(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	s := newScanner(cmd, text)

	to, _ := cmd.Flags().GetString("to")
	beyond, _ := cmd.Flags().GetBool("beyond")

	op := s.Reach
	if beyond {
		op = s.GoBeyond
	}
	if err := op(to); err != nil {
		return fmt.Errorf("reach %q: %w", to, err)
	}

	fmt.Println(s.Result())
	cons.Debugf("cursor at %d of %d", s.Offset(), s.Len())
	return nil
}

func runJSON(cmd *cobra.Command, args []string) error {
	verb := args[0]
	doc, err := readInput(args[1:])
	if err != nil {
		return err
	}
	if !jsonutil.Valid(doc) {
		return errors.New("input is not valid JSON")
	}

	path, _ := cmd.Flags().GetString("path")
	pretty, _ := cmd.Flags().GetBool("pretty")

	switch verb {
	case "get":
		result := jsonutil.Get(doc, path)
		if !result.Exists() {
			return fmt.Errorf("path %q not found", path)
		}
		fmt.Println(result.String())
		return nil

	case "set":
		value, _ := cmd.Flags().GetString("value")
		var out string
		if jsonutil.Valid(value) {
			out, err = jsonutil.SetRaw(doc, path, value)
		} else {
			out, err = jsonutil.Set(doc, path, value)
		}
		if err != nil {
			return err
		}
		if pretty {
			out = jsonutil.Pretty(out)
		}
		fmt.Print(out)
		return nil

	case "del":
		out, err := jsonutil.Delete(doc, path)
		if err != nil {
			return err
		}
		if pretty {
			out = jsonutil.Pretty(out)
		}
		fmt.Print(out)
		return nil

	default:
		return fmt.Errorf("unknown json verb %q", verb)
	}
}

func runScript(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[1:])
	if err != nil {
		return err
	}

	r := script.New(newScanner(cmd, text))
	defer r.Close()

	return r.RunFile(args[0])
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	scriptPath, _ := cmd.Flags().GetString("script")

	s := newScanner(cmd, "")
	if err := s.LoadFile(path); err != nil {
		return err
	}

	r := script.New(s)
	defer r.Close()

	rerun := func() {
		if err := r.RunFile(scriptPath); err != nil {
			cons.Errorf("%v", err)
		}
	}
	rerun()

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		return err
	}
	cons.Infof("watching %s", path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w.Run(ctx, func(event watcher.Event) {
		if event.Op.Has(watcher.OpRemove) || event.Op.Has(watcher.OpRename) {
			cons.Warnf("%s: %s", event.Path, event.Op)
			return
		}
		cons.Debugf("%s changed", event.Path)
		if err := s.LoadFile(path); err != nil {
			cons.Errorf("reload: %v", err)
			return
		}
		rerun()
	})
	return nil
}
