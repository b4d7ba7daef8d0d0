package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/favicon-tools-mcp/internal/favicon"
)

func newHTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "html",
		Short: "Print the link and meta tags for the generated assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			html, err := favicon.ReadHTML(viper.GetString("root"), favicon.Options{URLPrefix: viper.GetString("url-prefix")})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), html)
			return nil
		},
	}
}
