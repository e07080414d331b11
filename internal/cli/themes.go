package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/config"
	"github.com/jmylchreest/voronoi/internal/theme"
)

const themeFileHelp = `Theme file format:

  # comment
  [sunset]
  0xFF4500
  FFD700
  8B0000

  [mono]
  000000
  FFFFFF

A [name] line starts a theme. Each following line is one colour as six hex
digits, with an optional 0x prefix. An empty line ends the theme and lines
starting with # are comments. Up to 64 themes of up to 20 colours each are
allowed. Themes in the file take priority over built-in themes of the same
name.`

func newThemesCmd() *cobra.Command {
	var (
		configPath string
		preview    bool
	)

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available colour themes",
		Long: `List the built-in themes together with any themes defined in the theme file.

` + themeFileHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFor(cmd)
			if !cmd.Flags().Changed("config") {
				cfg, err := config.Load(config.DefaultEnvFile)
				if err != nil {
					return err
				}
				configPath = cfg.ThemeConfig
			}
			themes, err := loadThemes(configPath, logger)
			if err != nil {
				return err
			}
			printThemes(cmd.OutOrStdout(), themes, preview)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "theme file (default $XDG_CONFIG_HOME/voronoi/themes.conf if present)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show colour swatches")

	return cmd
}

// loadThemes returns the built-in themes merged with the themes in path.
// An empty path falls back to the per-user theme file when it exists.
func loadThemes(path string, logger hclog.Logger) (*theme.Collection, error) {
	builtin := theme.Builtin()

	if path == "" {
		def, err := config.DefaultThemeConfigPath()
		if err != nil {
			logger.Debug("no user config directory", "error", err)
			return builtin, nil
		}
		if _, err := os.Stat(def); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				logger.Warn("cannot read default theme file", "path", def, "error", err)
			}
			return builtin, nil
		}
		path = def
	}

	user, err := theme.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded theme file", "path", path, "themes", user.Len())
	return theme.Merge(builtin, user), nil
}

// printThemes writes a table of themes to w. With preview set, each theme is
// shown as a line of colour swatches instead. Themes shadowed by an earlier
// theme of the same name are omitted.
func printThemes(w io.Writer, themes *theme.Collection, preview bool) {
	var visible []theme.Theme
	seen := make(map[string]bool)
	for _, t := range themes.All() {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		visible = append(visible, t)
	}

	if preview {
		for _, t := range visible {
			fmt.Fprintf(w, "%s (%d)\n", t.Name, t.Len())
			fmt.Fprintf(w, "  %s\n", colour.Swatches(colour.DecomposeAll(t.Colors), 9))
		}
		return
	}

	table := NewTable([]string{"NAME", "COLOURS", "HEX"})
	table.SetColumnMaxWidth(2, 48)
	for _, t := range visible {
		table.AddRow([]string{t.Name, strconv.Itoa(t.Len()), hexList(t)})
	}
	fmt.Fprint(w, table.Render())
}

func hexList(t theme.Theme) string {
	parts := make([]string, len(t.Colors))
	for i, c := range t.Colors {
		parts[i] = colour.Decompose(c).Hex()
	}
	return strings.Join(parts, " ")
}
