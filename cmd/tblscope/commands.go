package main

import (
	"fmt"

	"github.com/npillmayer/tblscope"
	"github.com/npillmayer/tblscope/dom"
	"github.com/npillmayer/tblscope/dom/style/cssom"
	"github.com/npillmayer/tblscope/dom/style/cssom/douceuradapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRewriteCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [files...]",
		Short: "Rewrite tables for embedding",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg := configFrom(v)
			cfg.Audit = v.GetBool("check")
			embedded, err := tblscope.EmbedAll(texts(inputs), cfg)
			if err != nil {
				return err
			}
			failed := 0
			for i, e := range embedded {
				in := inputs[i]
				if e.Report != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s", in.name, e.Report)
					if !e.Report.OK() {
						failed++
					}
				}
				if dir := v.GetString("output"); dir != "" {
					if err := writeOutput(dir, in, e.Output); err != nil {
						return err
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), e.Output)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tables not isolated", failed, len(inputs))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringP("output", "o", "", "write rewritten tables to this directory")
	f.Bool("wrap", false, "wrap tables into a style-reset container")
	f.String("font-family", "", "font family inside the reset container")
	f.String("font-size", "", "font size inside the reset container, in points or inherit|initial|auto")
	f.String("line-height", "", "line height inside the reset container, in points or inherit|initial|auto")
	f.Bool("check", false, "audit isolation and report to stderr")
	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}
	return cmd
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Rewrite tables and audit their isolation",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg := configFrom(v)
			cfg.Audit, cfg.Wrap = true, false
			embedded, err := tblscope.EmbedAll(texts(inputs), cfg)
			if err != nil {
				return err
			}
			failed := 0
			for i, e := range embedded {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s", inputs[i].name, e.Report)
				if !e.Report.OK() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tables not isolated", failed, len(inputs))
			}
			return nil
		},
	}
}

func newOutlineCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline [file]",
		Short: "Print the style rules of a table as a tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			text := inputs[0].text
			if !v.GetBool("original") {
				text = configFrom(v).Rewriter().Apply(text).Output
			}
			doc, err := dom.Parse(text)
			if err != nil {
				return err
			}
			sheets, err := douceuradapter.ExtractStyleElements(doc)
			if err != nil {
				return err
			}
			for _, sheet := range sheets {
				fmt.Fprint(cmd.OutOrStdout(), cssom.Outline(sheet))
			}
			return nil
		},
	}
	cmd.Flags().Bool("original", false, "outline the table as rendered, without rewriting")
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}
