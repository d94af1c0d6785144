package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root harcli command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "harcli",
		Short: "Extract embedded media from HAR captures",
		Long: `harcli walks a HAR capture's recorded entries, keeps the image
responses, and packages them as a media.zip with collision-safe names.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newExtractCmd(),
		newListCmd(),
	)

	return root
}
