package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func newConstsCommand(a *app) *cobra.Command {
	var (
		glslPath, goPath, goPackage string
		consts                      []string
		base                        int
	)
	cmd := &cobra.Command{
		Use:   "consts",
		Short: "Generate named constants",
		Long: `Generate the default constants, the constants from the config file and
the ones given with --const as a GLSL include file and/or a Go source file.
Without any output path GLSL is written to stdout. The path "-" means stdout.`,
		Example: `  widefix consts --glsl consts.glsl --const FIX_TWO_PI=6.283185307179586476925286766559`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			set, err := cfg.ConstSet()
			if err != nil {
				return err
			}
			for _, c := range consts {
				name, value, found := strings.Cut(c, "=")
				if !found {
					return fmt.Errorf("invalid --const %q, want NAME=VALUE", c)
				}
				if err := set.AddString(strings.TrimSpace(name), strings.TrimSpace(value), base); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("glsl") {
				glslPath = cfg.Output.GLSL
			}
			if !cmd.Flags().Changed("go") {
				goPath = cfg.Output.Go
			}
			if !cmd.Flags().Changed("package") {
				goPackage = cfg.Output.GoPackage
			}
			if glslPath == "" && goPath == "" {
				glslPath = "-"
			}

			out := cmd.OutOrStdout()
			if glslPath != "" {
				if err := writeOutput(out, glslPath, set.WriteGLSL); err != nil {
					return err
				}
				glog.Infof("wrote %d GLSL constants to %s", set.Len(), glslPath)
			}
			if goPath != "" {
				err := writeOutput(out, goPath, func(w io.Writer) error {
					return set.WriteGo(w, goPackage)
				})
				if err != nil {
					return err
				}
				glog.Infof("wrote %d Go constants to %s", set.Len(), goPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&glslPath, "glsl", "", "GLSL output path (default from config)")
	cmd.Flags().StringVar(&goPath, "go", "", "Go output path (default from config)")
	cmd.Flags().StringVar(&goPackage, "package", "", "package name of the Go output (default from config)")
	cmd.Flags().StringArrayVar(&consts, "const", nil, "additional constant as NAME=VALUE, can be repeated")
	cmd.Flags().IntVar(&base, "base", 10, "radix of --const values")
	return cmd
}
