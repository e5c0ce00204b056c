package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for shapealign.

Completions cover commands, flags, alignment modes for --mode and output
formats for --format.

Load them for the current session:

  bash:        source <(shapealign completion bash)
  zsh:         source <(shapealign completion zsh)
  fish:        shapealign completion fish | source
  powershell:  shapealign completion powershell | Out-String | Invoke-Expression

To load them in every session, write the script to your shell's completion
directory instead, e.g.:

  shapealign completion bash > /etc/bash_completion.d/shapealign
  shapealign completion zsh > "${fpath[1]}/_shapealign"
  shapealign completion fish > ~/.config/fish/completions/shapealign.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations: map[string]string{
			annotConfigOptional: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(c.out, true)
			case "zsh":
				return root.GenZshCompletion(c.out)
			case "fish":
				return root.GenFishCompletion(c.out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(c.out)
			}
		},
	}

	return cmd
}
