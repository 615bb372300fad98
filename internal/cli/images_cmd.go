package cli

import (
	"encoding/json"
	"fmt"

	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewImagesCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "inspect stored images",
	}
	cmd.AddCommand(newImagesAuditCmd(deps))
	return cmd
}

// newImagesAuditCmd returns the `images audit` command.
//
// Usage examples:
//
//	portfolioctl images audit
//	portfolioctl images audit --format json
func newImagesAuditCmd(deps *Deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "report uploaded and placeholder images",
		Long: `Classify every stored image field as uploaded, local, placeholder,
remote or missing, and list the entities still showing placeholders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			audit, err := service.NewDashboardService(deps.Store, deps.Images).AuditImages(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(audit); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(audit)
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}
