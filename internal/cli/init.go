package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/starapp/internal/domain"
	"github.com/aalvaropc/starapp/internal/ports"
)

func initCmd(initializer ports.ConfigInitializer) *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starapp.yaml template and ignore .starapp/ in git",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := dir
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			if err := initializer.Init(domain.ConfigSpec{Root: root}, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized StarApp config in %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "Directory to initialize (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing starapp.yaml")
	return c
}
