package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tblscope"
	"github.com/npillmayer/tblscope/scope"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracer traces with key 'tblscope'.
func tracer() tracing.Trace {
	return tracing.Select("tblscope")
}

var traceKeys = []string{
	"tblscope",
	"tblscope.scope",
	"tblscope.audit",
	"tblscope.cssom",
	"tblscope.dom",
	"tblscope.reset",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "tblscope",
		Short:         "Scope the styles of rendered HTML tables for embedding",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.String("prefix", scope.DefaultClassPrefix, "class prefix of the table renderer")
	pf.String("root-class", "", "root class of the table (default <prefix>_table)")
	pf.String("token", scope.DefaultRenameToken, "token inserted in front of renderer classes")
	pf.Bool("no-rename", false, "do not rename renderer classes")
	pf.String("global", scope.DefaultGlobalSelector, "page-wide selector used by the renderer")
	pf.String("trace", "error", "trace level: error, info or debug")
	if err := v.BindPFlags(pf); err != nil {
		panic(err)
	}
	root.AddCommand(newRewriteCmd(v), newCheckCmd(v), newOutlineCmd(v))
	return root
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("TBLSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	setTraceLevel(v.GetString("trace"))
	return nil
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// configFrom collects the embedding settings from flags, environment and
// config file.
func configFrom(v *viper.Viper) tblscope.Config {
	return tblscope.Config{
		ClassPrefix:    v.GetString("prefix"),
		RootClass:      v.GetString("root-class"),
		RenameToken:    v.GetString("token"),
		NoRename:       v.GetBool("no-rename"),
		GlobalSelector: v.GetString("global"),
		Wrap:           v.GetBool("wrap"),
		FontFamily:     v.GetString("font-family"),
		FontSize:       v.GetString("font-size"),
		LineHeight:     v.GetString("line-height"),
	}
}

// input is a table document read from a file or stdin.
type input struct {
	name string
	text string
}

func texts(inputs []input) []string {
	t := make([]string, len(inputs))
	for i, in := range inputs {
		t[i] = in.text
	}
	return t
}

func readInputs(args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []input{{name: "<stdin>", text: string(b)}}, nil
	}
	inputs := make([]input, 0, len(args))
	for _, name := range args {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading table: %w", err)
		}
		inputs = append(inputs, input{name: name, text: string(b)})
	}
	return inputs, nil
}

// writeOutput writes a rewritten table to dir, under the base name of the input.
func writeOutput(dir string, in input, text string) error {
	if in.name == "<stdin>" {
		return fmt.Errorf("cannot derive output name for stdin, omit --output")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	out := filepath.Join(dir, filepath.Base(in.name))
	tracer().Debugf("writing %s", out)
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
