package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"completion": {Values: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
	"template":   {Values: []string{"default", "minimal"}},

	"config": {FileGlob: "*.yaml,*.yml,*.toml"},
	"output": {FileGlob: "*.html"},

	"asset-path": {IsDir: true},
}

// sourceGlob matches the positional argument.
const sourceGlob = "*.md"

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// completionFlags returns the flags of the md2html FlagSet.
func completionFlags() []flagDef {
	return extractFlagsFromFlagSet(newFlagSet(&cliFlags{}))
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashCompletion(completionFlags())
	case ShellZsh:
		script = zshCompletion(completionFlags())
	case ShellFish:
		script = fishCompletion(completionFlags())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, script)
	return err
}

func bashCompletion(flags []flagDef) string {
	var b strings.Builder
	var all []string

	b.WriteString("# bash completion for md2html\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    case \"$prev\" in\n")

	for _, f := range flags {
		names := "--" + f.Long
		all = append(all, "--"+f.Long)
		if f.Short != "" {
			names = "-" + f.Short + "|" + names
			all = append(all, "-"+f.Short)
		}

		var reply string
		switch f.Type {
		case flagBool:
			continue
		case flagEnum:
			reply = fmt.Sprintf(`COMPREPLY=($(compgen -W "%s" -- "$cur"))`, strings.Join(f.Values, " "))
		case flagFile:
			reply = `COMPREPLY=($(compgen -f -- "$cur"))`
		case flagDir:
			reply = `COMPREPLY=($(compgen -d -- "$cur"))`
		default:
			reply = "COMPREPLY=()"
		}
		fmt.Fprintf(&b, "        %s)\n            %s\n            return ;;\n", names, reply)
	}

	b.WriteString("    esac\n\n")
	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(all, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	fmt.Fprintf(&b, "    COMPREPLY=($(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", sourceGlob)
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _md2html md2html\n")
	return b.String()
}

func zshCompletion(flags []flagDef) string {
	var b strings.Builder

	b.WriteString("#compdef md2html\n\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    _arguments -s \\\n")

	for _, f := range flags {
		desc := "[" + zshEscape(f.Desc) + "]"
		action := zshAction(f)

		if f.Short != "" {
			fmt.Fprintf(&b, "        '(-%s --%s)'{-%s,--%s}'%s%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, action)
		} else {
			fmt.Fprintf(&b, "        '--%s%s%s' \\\n", f.Long, desc, action)
		}
	}

	fmt.Fprintf(&b, "        '*:markdown file:_files -g \"%s\"'\n", sourceGlob)
	b.WriteString("}\n\n")
	b.WriteString("_md2html \"$@\"\n")
	return b.String()
}

func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return `:file:_files -g "` + zshGlob(f.FileGlob) + `"`
	case flagDir:
		return ":directory:_files -/"
	default:
		return ":" + f.Long + ":"
	}
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(globs string) string {
	parts := strings.Split(globs, ",")
	if len(parts) == 1 {
		return parts[0]
	}
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

func fishCompletion(flags []flagDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for md2html\n")
	b.WriteString("complete -c md2html -f\n")
	fmt.Fprintf(&b, "complete -c md2html -k -a '(__fish_complete_suffix %s)'\n", strings.TrimPrefix(sourceGlob, "*"))

	for _, f := range flags {
		line := "complete -c md2html"
		if f.Short != "" {
			line += " -s " + f.Short
		}
		line += " -l " + f.Long + " -d '" + strings.ReplaceAll(f.Desc, "'", `\'`) + "'"

		switch f.Type {
		case flagEnum:
			line += " -x -a '" + strings.Join(f.Values, " ") + "'"
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagString:
			line += " -x"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
