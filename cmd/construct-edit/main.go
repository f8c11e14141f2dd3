// Package main provides construct-edit, an interactive browser and editor
// for parsed binary objects: it loads a YAML format spec and a YAML object
// file, attaches parse contexts, and exposes the entry tree through a small
// shell with undoable value edits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/Ircama/construct-editor/editor"
	"github.com/Ircama/construct-editor/entries"
	"github.com/Ircama/construct-editor/grammar"
	"github.com/Ircama/construct-editor/preprocess"
)

func main() {
	specPath := flag.String("spec", "", "YAML format spec file")
	dataPath := flag.String("data", "", "YAML object file")
	flag.Parse()

	if *specPath == "" || *dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: construct-edit -spec format.yaml -data object.yaml")
		os.Exit(2)
	}

	if err := run(*specPath, *dataPath); err != nil {
		slog.Error("session failed", "err", err)
		os.Exit(1)
	}
}

func run(specPath, dataPath string) error {
	con, err := grammar.LoadSpec(specPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read object file %s: %w", dataPath, err)
	}

	var obj any
	if err := yaml.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("failed to parse object YAML: %w", err)
	}

	model := editor.NewModel()
	model.OnValueChanged = func(e entries.Entry) {
		slog.Info("value changed", "path", e.Path().String(), "value", e.ValueLabel())
	}

	if err := model.Load(con, preprocess.Object(con, obj)); err != nil {
		return err
	}

	s := &session{model: model}
	s.cur = model.GetChildren(nil)[0]

	return s.repl()
}

// session is one interactive editing session.
type session struct {
	model *editor.Model
	cur   entries.Entry
	rl    *readline.Instance
}

func (s *session) repl() error {
	var err error

	s.rl, err = readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("ls"),
			readline.PcItem("cd"),
			readline.PcItem("pwd"),
			readline.PcItem("show"),
			readline.PcItem("set"),
			readline.PcItem("undo"),
			readline.PcItem("redo"),
			readline.PcItem("tree"),
			readline.PcItem("dump"),
			readline.PcItem("listview"),
			readline.PcItem("hidden"),
			readline.PcItem("format", readline.PcItem("dec"), readline.PcItem("hex")),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer s.rl.Close()

	fmt.Println("construct-edit - type 'help' for commands")

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}

			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.dispatch(line); err != nil {
			if err == errExit {
				return nil
			}

			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}

		s.rl.SetPrompt(s.prompt())
	}
}

var errExit = fmt.Errorf("exit")

func (s *session) prompt() string {
	path := s.cur.Path().String()
	if path == "" {
		path = "/"
	}

	return path + "> "
}

func (s *session) dispatch(line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "ls":
		s.list()
	case "cd":
		return s.chdir(rest)
	case "pwd":
		if path := s.cur.Path().String(); path != "" {
			fmt.Println(path)
		} else {
			fmt.Println("/")
		}
	case "show":
		s.show()
	case "set":
		return s.set(rest)
	case "undo":
		return s.model.Processor.Undo()
	case "redo":
		return s.model.Processor.Redo()
	case "tree":
		s.tree(s.cur, "")
	case "dump":
		spew.Dump(s.model.RootObject())
	case "listview":
		return s.toggleListView()
	case "hidden":
		s.model.HideProtected = !s.model.HideProtected
		fmt.Println("hide protected:", s.model.HideProtected)
	case "format":
		return s.setFormat(rest)
	case "help":
		s.help()
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}

	return nil
}

func (s *session) list() {
	children := s.model.GetChildren(s.cur)

	for _, child := range children {
		marker := " "
		if s.model.IsContainer(child) {
			marker = "+"
		}

		fmt.Printf("%s %-20s %-24s %s\n", marker, child.Name(), child.TypeLabel(), child.ValueLabel())

		// Flattened list-view columns, when enabled for this container.
		if s.model.IsListViewed(s.cur) {
			for i := 0; ; i++ {
				v := s.model.GetValue(child, editor.ColumnCount+i)
				if v == "" {
					break
				}

				fmt.Printf("    [%d] %v\n", i, v)
			}
		}
	}
}

func (s *session) chdir(name string) error {
	switch name {
	case "", "/":
		s.cur = s.model.GetChildren(nil)[0]
		return nil
	case "..":
		if parent := s.model.GetParent(s.cur); parent != nil {
			s.cur = parent
		}

		return nil
	}

	for _, child := range s.model.GetChildren(s.cur) {
		if child.Name() == name {
			s.cur = child
			return nil
		}
	}

	return fmt.Errorf("no child named %q", name)
}

func (s *session) show() {
	fmt.Println("name: ", s.cur.Name())
	fmt.Println("type: ", s.cur.TypeLabel())
	fmt.Println("value:", s.cur.ValueLabel())

	if docs := s.cur.Docs(); docs != "" {
		fmt.Println("docs: ", docs)
	}

	switch p := s.cur.Panel().(type) {
	case entries.IntegerPanel:
		fmt.Println("edit:  integer (0x/0o/0b prefixes allowed)")
	case entries.ChoicePanel:
		fmt.Println("edit:  one of:")
		for _, c := range p.Choices {
			fmt.Println("   ", c.Display())
		}
	case entries.FlagsPanel:
		fmt.Println("edit:  comma-separated flags of:")
		for _, f := range p.Flags {
			fmt.Printf("    %s (set: %v)\n", f.Name, f.Set)
		}
	case entries.TimestampPanel:
		fmt.Println("edit:  'YYYY-MM-DD HH:MM:SS'")
	case entries.DefaultPanel:
		if p.ReadOnly {
			fmt.Println("edit:  read-only")
		}
	}
}

func (s *session) set(text string) error {
	var value any

	switch p := s.cur.Panel().(type) {
	case entries.IntegerPanel:
		value = p.Parse(text)
	case entries.ChoicePanel:
		value = p.Parse(text)
	case entries.FlagsPanel:
		var names []string
		for _, name := range strings.Split(text, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}

		value = p.Compose(names)
	case entries.TimestampPanel:
		date, clock, ok := strings.Cut(text, " ")
		if !ok {
			return fmt.Errorf("expected 'YYYY-MM-DD HH:MM:SS'")
		}

		t, err := p.Compose(date, clock)
		if err != nil {
			return err
		}

		value = t
	default:
		value = text
	}

	return s.model.SetValue(value, s.cur, int(editor.ColumnValue))
}

func (s *session) tree(e entries.Entry, indent string) {
	fmt.Printf("%s%s (%s) %s\n", indent, e.Name(), e.TypeLabel(), e.ValueLabel())

	for _, child := range s.model.GetChildren(e) {
		s.tree(child, indent+"  ")
	}
}

func (s *session) toggleListView() error {
	menu := &entries.ContextMenu{}
	s.cur.ModifyContextMenu(menu)

	for _, item := range menu.Items {
		if item.Checkable {
			item.Invoke()
			fmt.Println("list view:", s.model.IsListViewed(s.cur))

			return nil
		}
	}

	return fmt.Errorf("entry offers no list view")
}

func (s *session) setFormat(name string) error {
	switch name {
	case "dec":
		s.model.SetIntegerFormat(entries.FormatDec)
	case "hex":
		s.model.SetIntegerFormat(entries.FormatHex)
	default:
		return fmt.Errorf("format is 'dec' or 'hex'")
	}

	return nil
}

func (s *session) help() {
	fmt.Println(`ls              list children of the current entry
cd <name|..|/>  navigate
pwd             print the current path
show            entry details and edit hints
set <text>      edit the current entry's value (undoable)
undo / redo     walk the edit history
tree            print the subtree
dump            dump the live object graph
listview        toggle the flattened list view for this container
hidden          toggle hiding of protected fields
format dec|hex  integer display format
exit            leave`)
}
