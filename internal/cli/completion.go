package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Besides commands and
// flags, the scripts complete stored trace names for replay and trace
// show/delete.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for scrollhead.

Trace arguments (replay, trace show, trace delete) complete from the trace
store, so recorded sessions can be picked by name.

  bash:        source <(scrollhead completion bash)
  zsh:         scrollhead completion zsh > "${fpath[1]}/_scrollhead"
  fish:        scrollhead completion fish | source
  powershell:  scrollhead completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}

// completeTraceNames completes the first argument with stored trace names.
// Store errors yield no suggestions.
func (c *CLI) completeTraceNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := c.traceStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	summaries, err := store.List(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, s := range summaries {
		if strings.HasPrefix(s.Name, toComplete) {
			names = append(names, s.Name+"\t"+shortID(s.ID))
		}
	}
	// Replay also accepts trace files.
	directive := cobra.ShellCompDirectiveNoFileComp
	if cmd.Name() == "replay" {
		directive = cobra.ShellCompDirectiveDefault
	}
	return names, directive
}
