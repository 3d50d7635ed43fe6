package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts.

Supported shells: bash, zsh, fish, powershell`,
		Example: `  # Bash (add to ~/.bashrc or /etc/bash_completion.d/)
  ulidkit completion bash > /etc/bash_completion.d/ulidkit

  # Zsh (add to fpath)
  ulidkit completion zsh > "${fpath[1]}/_ulidkit"

  # Fish
  ulidkit completion fish > ~/.config/fish/completions/ulidkit.fish`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return fmt.Errorf("unknown shell: %s", args[0])
		},
	}
}
