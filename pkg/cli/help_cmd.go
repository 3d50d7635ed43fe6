package cli

import (
	"fmt"

	"github.com/fuxingloh/ulidkit/pkg/cli/help"
	"github.com/spf13/cobra"
)

// newHelpCmd replaces cobra's help command so that "ulidkit help <topic>"
// prints an embedded topic when the argument is not a command.
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command | topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command, or one of these topics:

` + help.ListTopics(),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return help.AvailableTopics, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			if len(args) == 0 {
				return root.Help()
			}

			if c, _, err := root.Find(args); err == nil && c != root {
				return c.Help()
			}

			content, err := help.GetTopic(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}
